package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closeRecorder buffers writes and returns closeErr from Close.
type closeRecorder struct {
	bytes.Buffer
	closeErr error
	closed   int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.closeErr
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))

	w := &closeRecorder{}
	require.NoError(t, writePNG(w, img))
	assert.Equal(t, 1, w.closed)
	decoded, err := png.Decode(bytes.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestWritePNG_CloseFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	w := &closeRecorder{closeErr: errDisk}

	err := writePNG(w, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, 1, w.closed)
}
