// Package lines applies a per-line function to a byte stream.
package lines

import (
	"bytes"
	"io"
)

const chunkSize = 4096

// Transform returns an io.Reader that yields fn applied to each line of r.
//
// Lines are delimited by '\n'. fn receives a line without its terminator
// (a trailing "\r" is removed as well) and every result is written followed
// by a single '\n'. A final line without a terminator is still passed to fn.
// The line passed to fn is only valid for the duration of the call. The
// first error returned by fn or r ends the stream once the output produced
// before it has been read.
//
//	r := lines.Transform(os.Stdin, func(line []byte) ([]byte, error) {
//	    return bytes.ToUpper(line), nil
//	})
//	io.Copy(os.Stdout, r)
func Transform(r io.Reader, fn func(line []byte) ([]byte, error)) io.Reader {
	return &transformReader{
		source: r,
		fn:     fn,
		buf:    make([]byte, 0, chunkSize),
	}
}

type transformReader struct {
	source io.Reader
	fn     func(line []byte) ([]byte, error)

	// Unprocessed input; buf[start:] holds at most one partial line.
	buf       []byte
	start     int
	sourceEOF bool

	// Transformed lines not yet handed to the caller.
	output      []byte
	outputStart int

	err error
}

func (r *transformReader) Read(p []byte) (int, error) {
	for r.outputStart == len(r.output) {
		r.output = r.output[:0]
		r.outputStart = 0
		if r.err != nil {
			return 0, r.err
		}
		r.err = r.processMore()
	}

	n := copy(p, r.output[r.outputStart:])
	r.outputStart += n
	return n, nil
}

// processMore reads one chunk from the source and transforms every complete
// line in the buffer. It returns io.EOF once all input has been consumed.
func (r *transformReader) processMore() error {
	if r.start > 0 {
		r.buf = r.buf[:copy(r.buf, r.buf[r.start:])]
		r.start = 0
	}

	if !r.sourceEOF {
		if cap(r.buf)-len(r.buf) < chunkSize {
			grown := make([]byte, len(r.buf), len(r.buf)+chunkSize)
			copy(grown, r.buf)
			r.buf = grown
		}
		n, err := r.source.Read(r.buf[len(r.buf):cap(r.buf)])
		r.buf = r.buf[:len(r.buf)+n]
		if err == io.EOF {
			r.sourceEOF = true
		} else if err != nil {
			return err
		}
	}

	for {
		data := r.buf[r.start:]
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			if !r.sourceEOF {
				return nil
			}
			r.start = len(r.buf)
			if len(data) > 0 {
				if err := r.emit(data); err != nil {
					return err
				}
			}
			return io.EOF
		}
		r.start += idx + 1
		if err := r.emit(data[:idx]); err != nil {
			return err
		}
	}
}

func (r *transformReader) emit(line []byte) error {
	out, err := r.fn(bytes.TrimSuffix(line, []byte{'\r'}))
	if err != nil {
		return err
	}
	r.output = append(r.output, out...)
	r.output = append(r.output, '\n')
	return nil
}
