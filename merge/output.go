package merge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/emlmerge/source"
)

// DefaultBaseName is the output file name used when the target is a directory.
const DefaultBaseName = "merged_emails"

// DefaultName returns the default output file name for ext.
func DefaultName(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return DefaultBaseName
	}
	return DefaultBaseName + "." + ext
}

// ResolveOutput returns the file the merge writes to. A target that names an
// existing directory or ends with a path separator gets defaultName appended;
// any other target is used verbatim.
func ResolveOutput(ctx context.Context, fs source.Service, target, defaultName string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("%w: empty output", ErrOutputUncreatable)
	}
	switch scheme := url.Scheme(target, ""); scheme {
	case "":
	case "file":
		target = url.Path(target) + trailingSeparator(target)
	default:
		return "", fmt.Errorf("%w: %s: only local output is supported", ErrOutputUncreatable, target)
	}
	if trailingSeparator(target) != "" {
		return filepath.Join(target, defaultName), nil
	}
	if isDir(ctx, fs, target) {
		return filepath.Join(target, defaultName), nil
	}
	return target, nil
}

func trailingSeparator(target string) string {
	if strings.HasSuffix(target, "/") || strings.HasSuffix(target, string(os.PathSeparator)) {
		return string(os.PathSeparator)
	}
	return ""
}

func isDir(ctx context.Context, fs source.Service, target string) bool {
	if ok, err := fs.Exists(ctx, target); err != nil || !ok {
		return false
	}
	object, err := fs.Object(ctx, target)
	if err != nil {
		return false
	}
	return object.IsDir()
}
