package tim2

import (
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/vchimishuk/chub/cue"
)

// Raw MODE1/2352 sector framing: sync and header, user data, then EDC/ECC.
const (
	sectorHeader  = 16
	sectorSize    = 2048
	sectorTrailer = 288
)

// crcData hashes container bytes for the catalog. The CRC is taken over
// decompressed content so identical textures match however they are stored
// on disk.
func crcData(data []byte) string {
	h := crc32.NewIEEE()
	h.Write(data)
	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil))
}

func firstDataTrack(sheet *cue.Sheet) (string, cue.TrackDataType, error) {
	for _, file := range sheet.Files {
		for _, track := range file.Tracks {
			switch track.DataType {
			case cue.DataTypeMode1_2048, cue.DataTypeMode1_2352:
				return file.Name, track.DataType, nil
			}
		}
	}
	return "", cue.DataTypeAudio, errors.New("tim2: no data track in cue sheet")
}

// readDataTrack loads the first data track referenced by a cue sheet. Raw
// MODE1/2352 tracks are de-sectorized so only user data remains and file
// offsets line up with a plain ISO dump.
func readDataTrack(file string) ([]byte, error) {
	sheet, err := cue.ParseFile(file)
	if err != nil {
		return nil, fmt.Errorf("tim2: parse %s: %w", file, err)
	}

	name, dataType, err := firstDataTrack(sheet)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(file), name))
	if err != nil {
		return nil, err
	}

	if dataType == cue.DataTypeMode1_2048 {
		return data, nil
	}

	raw := sectorHeader + sectorSize + sectorTrailer
	out := make([]byte, 0, len(data)/raw*sectorSize)
	for off := 0; off+raw <= len(data); off += raw {
		out = append(out, data[off+sectorHeader:off+sectorHeader+sectorSize]...)
	}
	return out, nil
}
