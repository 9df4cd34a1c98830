package magnet

import (
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidMagnet = errors.New("invalid magnet uri")

const btihPrefix = "urn:btih:"

type InfoHash [20]byte

// String returns the lowercase hex form of the hash.
func (h InfoHash) String() string {
	return hex.EncodeToString(h[:])
}

type Magnet struct {
	InfoHash    InfoHash
	DisplayName string
	Trackers    []string
}

// ParseMagnetUri parses a BitTorrent v1 magnet link. The btih hash may be
// given as 40 hex characters or 32 base32 characters.
func ParseMagnetUri(uri string) (*Magnet, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMagnet, err)
	}
	if u.Scheme != "magnet" {
		return nil, fmt.Errorf("%w: unexpected scheme %q", ErrInvalidMagnet, u.Scheme)
	}

	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMagnet, err)
	}

	m := &Magnet{
		DisplayName: values.Get("dn"),
		Trackers:    values["tr"],
	}

	found := false
	for _, xt := range values["xt"] {
		if len(xt) < len(btihPrefix) || !strings.EqualFold(xt[:len(btihPrefix)], btihPrefix) {
			continue
		}
		m.InfoHash, err = decodeInfoHash(xt[len(btihPrefix):])
		if err != nil {
			return nil, err
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%w: missing xt=urn:btih", ErrInvalidMagnet)
	}
	return m, nil
}

func decodeInfoHash(s string) (InfoHash, error) {
	var h InfoHash
	var b []byte
	var err error
	switch len(s) {
	case 40:
		b, err = hex.DecodeString(s)
	case 32:
		b, err = base32.StdEncoding.DecodeString(strings.ToUpper(s))
	default:
		return h, fmt.Errorf("%w: info hash %q has length %d", ErrInvalidMagnet, s, len(s))
	}
	if err != nil {
		return h, fmt.Errorf("%w: info hash %q: %v", ErrInvalidMagnet, s, err)
	}
	copy(h[:], b)
	return h, nil
}
