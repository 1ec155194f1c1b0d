package profile

import (
	"io"
	"os"
)

// File is a local image waiting to be uploaded.
type File struct {
	Name        string
	Path        string
	ContentType string
}

func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Attachments is an ordered set of pending files. It is never mutated in
// place: With and Without return a fresh slice, so copies of a record never
// observe each other's changes.
type Attachments []*File

func (a Attachments) With(files ...*File) Attachments {
	next := make(Attachments, 0, len(a)+len(files))
	next = append(next, a...)

	for _, f := range files {
		if f == nil {
			continue
		}

		next = append(next, f)
	}

	return next
}

// Without drops the file at index i. Out-of-range indices return an
// unchanged copy.
func (a Attachments) Without(i int) Attachments {
	next := make(Attachments, 0, len(a))
	for j, f := range a {
		if j == i {
			continue
		}

		next = append(next, f)
	}

	return next
}
