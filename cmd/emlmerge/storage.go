package main

// Remote input schemes for afs.
import (
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)
