package nds

import (
	"archive/zip"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

var errNoImage = errors.New("nds: no " + Extension + " image in archive")

// ReadFile decodes the header of the image at path. The file is either a
// raw image or a zip archive in which case the first member with the
// Extension suffix is used
func ReadFile(path string, opts ...Option) (*Header, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	switch mime.Extension() {
	case ".zip":
		return readZip(path, opts...)
	default:
		return readRaw(path, opts...)
	}
}

func readRaw(path string, opts ...Option) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// A file shorter than the header surfaces as ErrTruncated
	h, err := Decode(io.NewSectionReader(f, 0, Size), opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return h, nil
}

func readZip(path string, opts ...Option) (*Header, error) {
	z, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer z.Close()

	for _, zf := range z.File {
		if !strings.EqualFold(filepath.Ext(zf.Name), Extension) {
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		b, err := ioutil.ReadAll(io.LimitReader(rc, Size))
		if err != nil {
			return nil, err
		}

		h, err := Decode(bytes.NewReader(b), opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %s", path, zf.Name)
		}

		return h, nil
	}

	return nil, errors.Wrap(errNoImage, path)
}
