// Package mp4probe reads stream metadata from MP4 files.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecVP9     Codec = "vp9"
	CodecUnknown Codec = "unknown"
)

// ErrNoVideoTrack is returned when the file has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Info describes the first video track of an MP4 file.
type Info struct {
	Codec      Codec
	Width      int
	Height     int
	FrameCount int
	Duration   time.Duration
	Fragmented bool
}

// FrameRate returns frames per second, or zero when unknown.
func (i Info) FrameRate() float64 {
	if i.Duration <= 0 || i.FrameCount == 0 {
		return 0
	}
	return float64(i.FrameCount) / i.Duration.Seconds()
}

// Sniff reports whether r starts with an ftyp box. The reader is rewound.
func Sniff(r io.ReadSeeker) bool {
	var hdr [8]byte
	_, err := io.ReadFull(r, hdr[:])
	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return false
	}
	return err == nil && bytes.Equal(hdr[4:8], []byte("ftyp"))
}

// ProbeFile reads metadata from the MP4 file at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Probe(f)
}

// Probe reads metadata from an io.ReadSeeker.
func Probe(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() {
		return probeFragmented(mp4File)
	}
	return probeProgressive(mp4File)
}

func probeProgressive(mp4File *mp4.File) (Info, error) {
	if mp4File.Moov == nil {
		return Info{}, ErrNoVideoTrack
	}
	trak := findVideoTrack(mp4File.Moov.Traks)
	if trak == nil {
		return Info{}, ErrNoVideoTrack
	}

	info := trackInfo(trak)
	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsz != nil {
		info.FrameCount = int(stbl.Stsz.SampleNumber)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.Duration = ticks(mdhd.Duration, mdhd.Timescale)
	}
	return info, nil
}

func probeFragmented(mp4File *mp4.File) (Info, error) {
	if mp4File.Init == nil || mp4File.Init.Moov == nil {
		return Info{}, ErrNoVideoTrack
	}
	moov := mp4File.Init.Moov
	trak := findVideoTrack(moov.Traks)
	if trak == nil {
		return Info{}, ErrNoVideoTrack
	}

	if trak.Tkhd == nil {
		return Info{}, fmt.Errorf("%w: video track has no track header", ErrNoVideoTrack)
	}

	info := trackInfo(trak)
	info.Fragmented = true
	trackID := trak.Tkhd.TrackID

	trex := &mp4.TrexBox{TrackID: trackID}
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	var totalDur uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != trackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return Info{}, fmt.Errorf("get samples: %w", err)
				}
				info.FrameCount += len(samples)
				for _, s := range samples {
					totalDur += uint64(s.Dur)
				}
			}
		}
	}

	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.Duration = ticks(totalDur, mdhd.Timescale)
	}
	return info, nil
}

func findVideoTrack(traks []*mp4.TrakBox) *mp4.TrakBox {
	for _, trak := range traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
			continue
		}
		return trak
	}
	return nil
}

func trackInfo(trak *mp4.TrakBox) Info {
	info := Info{Codec: CodecUnknown}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}

	stsd := trak.Mdia.Minf.Stbl.Stsd
	if stsd == nil {
		return info
	}
	for _, child := range stsd.Children {
		if c := codecFromType(child.Type()); c != CodecUnknown {
			info.Codec = c
		}
		// sample entry dimensions win over a missing track header
		if vse, ok := child.(*mp4.VisualSampleEntryBox); ok && (info.Width == 0 || info.Height == 0) {
			info.Width = int(vse.Width)
			info.Height = int(vse.Height)
		}
	}
	return info
}

func codecFromType(boxType string) Codec {
	switch boxType {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecHEVC
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	}
	return CodecUnknown
}

// ticks converts n timescale units to a duration without overflowing for
// long tracks.
func ticks(n uint64, timescale uint32) time.Duration {
	ts := uint64(timescale)
	return time.Duration(n/ts)*time.Second + time.Duration(n%ts)*time.Second/time.Duration(ts)
}
