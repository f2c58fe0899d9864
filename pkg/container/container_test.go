package container

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
)

func sampleFrames() []*bwimg.Image {
	sizes := []struct{ w, h uint32 }{{8, 1}, {9, 3}, {1, 1}, {32, 4}, {0, 0}, {17, 17}}
	frames := make([]*bwimg.Image, 0, len(sizes))
	for i, s := range sizes {
		img := bwimg.New(s.w, s.h)
		for j := range img.Data {
			img.Data[j] = byte(i*31+j*7) & padMask(s.w, j)
		}
		frames = append(frames, img)
	}
	return frames
}

// padMask clears padding bits in the last byte of each row.
func padMask(width uint32, idx int) byte {
	stride := bwimg.RowBytes(width)
	if stride == 0 || idx%stride != stride-1 || width%8 == 0 {
		return 0xFF
	}
	return byte(0xFF << (8 - width%8))
}

func allCodecs() []compression.Codec {
	var codecs []compression.Codec
	for _, k := range compression.Kinds() {
		codecs = append(codecs, compression.MustNew(k, compression.DefaultLevel))
	}
	return codecs
}

func assertSameFrames(t *testing.T, want, got []*bwimg.Image) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "frame %d differs", i)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	frames := sampleFrames()

	for _, codec := range allCodecs() {
		t.Run(string(codec.Kind()), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, codec, frames))

			got, err := Decode(bytes.NewReader(buf.Bytes()), codec)
			require.NoError(t, err)
			assertSameFrames(t, frames, got)
		})
	}
}

func TestEncode_NoneIsPlainConcatenation(t *testing.T) {
	frames := sampleFrames()

	var want bytes.Buffer
	for _, f := range frames {
		require.NoError(t, bwimg.Encode(&want, f))
	}

	var got bytes.Buffer
	require.NoError(t, Encode(&got, compression.MustNew(compression.None, 0), frames))
	assert.Equal(t, want.Bytes(), got.Bytes())
}

func TestEmptyContainer(t *testing.T) {
	for _, codec := range allCodecs() {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, codec, nil))

		got, err := Decode(&buf, codec)
		require.NoError(t, err, "%s", codec.Kind())
		assert.Empty(t, got)
	}
}

func TestStreamingMatchesEager(t *testing.T) {
	frames := sampleFrames()

	for _, codec := range allCodecs() {
		t.Run(string(codec.Kind()), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, codec)
			require.NoError(t, err)
			for _, f := range frames {
				require.NoError(t, w.WriteFrame(f))
			}
			assert.Equal(t, len(frames), w.Count())
			require.NoError(t, w.Close())
			data := buf.Bytes()

			eager, err := Decode(bytes.NewReader(data), codec)
			require.NoError(t, err)

			var streamed []*bwimg.Image
			for img, err := range Frames(bytes.NewReader(data), codec) {
				require.NoError(t, err)
				streamed = append(streamed, img)
			}

			assertSameFrames(t, frames, eager)
			assertSameFrames(t, eager, streamed)
		})
	}
}

// truncatedContainer holds two whole frames followed by half of a third,
// compressed as a complete stream.
func truncatedContainer(t *testing.T, codec compression.Codec) ([]byte, []*bwimg.Image) {
	t.Helper()
	frames := sampleFrames()[:3]

	var raw bytes.Buffer
	for _, f := range frames {
		require.NoError(t, bwimg.Encode(&raw, f))
	}
	cut := raw.Len() - 1

	var buf bytes.Buffer
	err := compression.WithWriter(&buf, codec, func(w io.Writer) error {
		_, err := w.Write(raw.Bytes()[:cut])
		return err
	})
	require.NoError(t, err)
	return buf.Bytes(), frames[:2]
}

func TestDecode_TruncatedFailsWhole(t *testing.T) {
	for _, codec := range allCodecs() {
		data, _ := truncatedContainer(t, codec)

		got, err := Decode(bytes.NewReader(data), codec)
		assert.Nil(t, got, "%s", codec.Kind())
		assert.ErrorIs(t, err, bwimg.ErrTruncated, "%s", codec.Kind())
	}
}

func TestFrames_TruncatedYieldsGoodFramesThenError(t *testing.T) {
	for _, codec := range allCodecs() {
		data, good := truncatedContainer(t, codec)

		var got []*bwimg.Image
		var errs []error
		for img, err := range Frames(bytes.NewReader(data), codec) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			got = append(got, img)
		}

		assertSameFrames(t, good, got)
		require.Len(t, errs, 1, "%s", codec.Kind())
		assert.ErrorIs(t, errs[0], bwimg.ErrTruncated)
	}
}

func TestFrames_EarlyBreak(t *testing.T) {
	var buf bytes.Buffer
	codec := compression.MustNew(compression.Zstd, compression.DefaultLevel)
	require.NoError(t, Encode(&buf, codec, sampleFrames()))

	n := 0
	for _, err := range Frames(&buf, codec) {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestReader_NextAndSkip(t *testing.T) {
	frames := sampleFrames()
	codec := compression.MustNew(compression.Gzip, compression.DefaultLevel)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, codec, frames))

	r, err := NewReader(&buf, codec)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Skip())
	require.NoError(t, r.Skip())
	img, err := r.Next()
	require.NoError(t, err)
	assert.True(t, frames[2].Equal(img))
	assert.Equal(t, 3, r.Index())

	for range len(frames) - 3 {
		_, err = r.Next()
		require.NoError(t, err)
	}

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, io.EOF, r.Skip(), "reader stays at EOF")
}

func TestAt(t *testing.T) {
	frames := sampleFrames()
	codec := compression.MustNew(compression.Zlib, compression.DefaultLevel)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, codec, frames))
	data := buf.Bytes()

	for i, want := range frames {
		got, err := At(bytes.NewReader(data), codec, i)
		require.NoError(t, err, "index %d", i)
		assert.True(t, want.Equal(got), "index %d", i)
	}

	_, err := At(bytes.NewReader(data), codec, len(frames))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = At(bytes.NewReader(data), codec, len(frames)+5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = At(bytes.NewReader(data), codec, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestHeaders(t *testing.T) {
	frames := sampleFrames()
	codec := compression.MustNew(compression.None, 0)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, codec, frames))

	headers, err := Headers(&buf, codec)
	require.NoError(t, err)
	require.Len(t, headers, len(frames))
	for i, f := range frames {
		assert.Equal(t, bwimg.Header{Width: f.Width, Height: f.Height}, headers[i])
	}
}

func TestEncode_InvalidFrameStillFinishes(t *testing.T) {
	good := bwimg.New(8, 2)
	good.Data[0] = 0xFF
	bad := &bwimg.Image{Width: 8, Height: 2, Data: []byte{0x01}}

	for _, codec := range allCodecs() {
		var buf bytes.Buffer
		err := Encode(&buf, codec, []*bwimg.Image{good, bad})
		require.ErrorIs(t, err, bwimg.ErrInvalidImage)

		got, err := Decode(&buf, codec)
		require.NoError(t, err, "%s: finished stream must decode", codec.Kind())
		assertSameFrames(t, []*bwimg.Image{good}, got)
	}
}

func TestWriter_CloseTwiceAndWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, compression.MustNew(compression.Gzip, compression.DefaultLevel))
	require.NoError(t, err)

	require.NoError(t, w.WriteFrame(bwimg.New(4, 4)))
	require.NoError(t, w.Close())
	n := buf.Len()
	require.NoError(t, w.Close())
	assert.Equal(t, n, buf.Len())

	assert.True(t, errors.Is(w.WriteFrame(bwimg.New(1, 1)), ErrClosed))
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, codec := range allCodecs() {
		t.Run(string(codec.Kind()), func(t *testing.T) {
			got, err := Decode(bytes.NewReader(nil), codec)

			switch codec.Kind() {
			case compression.Gzip, compression.Zlib:
				// both need a header before any data
				require.ErrorIs(t, err, bwimg.ErrTruncated)
				assert.False(t, errors.Is(err, io.EOF), "must not look like a clean end")
				assert.False(t, errors.Is(err, io.ErrUnexpectedEOF))
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Empty(t, got)
			}
		})
	}
}

func TestFrames_EmptyGzipYieldsOneError(t *testing.T) {
	var errs []error
	for img, err := range Frames(bytes.NewReader(nil), compression.MustNew(compression.Gzip, compression.DefaultLevel)) {
		assert.Nil(t, img)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], bwimg.ErrTruncated)

	_, err := Headers(bytes.NewReader(nil), compression.MustNew(compression.Zlib, compression.DefaultLevel))
	assert.ErrorIs(t, err, bwimg.ErrTruncated)
}

func TestEncode_EmptyZstdIsAFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, compression.MustNew(compression.Zstd, compression.DefaultLevel), nil))
	assert.NotZero(t, buf.Len(), "an empty zstd container still holds a frame")
}
