package referral

import (
	"fmt"

	"github.com/speps/go-hashids/v2"
)

// CodeGenerator turns user IDs into opaque referral codes and back.
type CodeGenerator struct {
	h *hashids.HashID
}

func NewCodeGenerator(salt string) (*CodeGenerator, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("init referral codes: %w", err)
	}

	return &CodeGenerator{h: h}, nil
}

func (g *CodeGenerator) Encode(userID int64) (string, error) {
	code, err := g.h.EncodeInt64([]int64{userID})
	if err != nil {
		return "", fmt.Errorf("encode referral code: %w", err)
	}
	return code, nil
}

func (g *CodeGenerator) Decode(code string) (int64, error) {
	ids, err := g.h.DecodeInt64WithError(code)
	if err != nil || len(ids) == 0 {
		return 0, ErrInvalidCode
	}
	return ids[0], nil
}
