package nds

import "io"

// Source is a random access byte source of known size. *bytes.Reader,
// *strings.Reader and *io.SectionReader all satisfy it
type Source interface {
	io.ReaderAt
	Size() int64
}

// Diagnostic receives each field and its decoded value as it is decoded
type Diagnostic func(f Field, value interface{})

type options struct {
	diagnostic Diagnostic
	strict     bool
}

// Option configures Decode
type Option func(*options)

// WithDiagnostic installs a diagnostic sink. Text fields are passed as a
// string of the raw bytes, the logo as a []byte and everything else as the
// unsigned integer type of the field
func WithDiagnostic(d Diagnostic) Option {
	return func(o *options) {
		if d != nil {
			o.diagnostic = d
		}
	}
}

// WithStrictText rejects text fields that contain anything other than
// printable ASCII or NUL padding. By default text is copied as is
func WithStrictText() Option {
	return func(o *options) {
		o.strict = true
	}
}

func validText(b []byte) int {
	for i, c := range b {
		if c != 0 && (c < 0x20 || c > 0x7e) {
			return i
		}
	}
	return -1
}

// Decode reads every header field from src. src must be exactly Size bytes
// long. Each field is read with ReadAt at its own offset so a src shared
// between goroutines can be decoded concurrently
func Decode(src Source, opts ...Option) (*Header, error) {
	o := options{
		diagnostic: func(Field, interface{}) {},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if size := src.Size(); size != Size {
		return nil, &LengthError{Size: size}
	}

	h := new(Header)
	buf := make([]byte, maxWidth)

	for _, f := range fields {
		b := buf[:f.Width]

		if n, err := src.ReadAt(b, f.Offset); n < len(b) {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, &ReadError{Field: f.Name, Offset: f.Offset, Err: err}
		}

		if o.strict && f.Kind == Text {
			if i := validText(b); i >= 0 {
				return nil, &EncodingError{Field: f.Name, Offset: f.Offset + int64(i), Value: b[i]}
			}
		}

		o.diagnostic(f.Field, f.decode(h, b))
	}

	return h, nil
}
