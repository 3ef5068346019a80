package xl

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
)

// PictureInfo is an image placed in a cell. Equal blobs are stored once
// per file.
type PictureInfo struct {
	Extension string // ".png", ".jpg" or ".jpeg"
	Blob      []byte
}

func BlobHash(blob []byte) uuid.UUID {
	h := fnv.New128()
	h.Write(blob)
	uid, _ := uuid.FromBytes(h.Sum([]byte{}))
	return uid
}

// mediaName returns the content-addressed part name of a picture and its
// content type.
func (p *PictureInfo) mediaName() (name, ext, ctype string, err error) {
	if p == nil {
		return "", "", "", errors.New("missing picture data")
	}
	if len(p.Blob) == 0 {
		return "", "", "", errors.New("empty picture data")
	}
	ext = strings.TrimPrefix(strings.ToLower(p.Extension), ".")
	switch ext {
	case "jpg", "jpeg":
		ext, ctype = "jpeg", "image/jpeg"
	case "png":
		ctype = "image/png"
	default:
		return "", "", "", fmt.Errorf("unsupported image extension %s", p.Extension)
	}
	return BlobHash(p.Blob).String() + "." + ext, ext, ctype, nil
}
