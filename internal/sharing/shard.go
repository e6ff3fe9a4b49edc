package sharing

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-steward-keeper/models"
)

// ErrMalformedShard is returned when a shard's encoded values cannot be decoded.
var ErrMalformedShard = errors.New("malformed shard")

// EncodeInt returns the standard base64 encoding of n's big-endian bytes.
// Zero is encoded as a single zero byte so the result is never empty.
func EncodeInt(n *big.Int) string {
	b := n.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}

	return base64.StdEncoding.EncodeToString(b)
}

// DecodeInt reverses [EncodeInt].
func DecodeInt(s string) (*big.Int, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedShard, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrMalformedShard)
	}

	return new(big.Int).SetBytes(b), nil
}

// ToShard converts a share into its wire form. Optional metadata is left
// for the caller to fill in.
func ToShard(s Share, creatorPubkey string, createdAt int64) models.Shard {
	return models.Shard{
		Share:         EncodeInt(s.Value),
		Threshold:     s.Threshold,
		ShardIndex:    s.Index,
		TotalShards:   s.Total,
		PrimeMod:      EncodeInt(s.Modulus),
		CreatorPubkey: creatorPubkey,
		CreatedAt:     createdAt,
	}
}

// FromShard decodes the share carried by a shard.
func FromShard(sh models.Shard) (Share, error) {
	value, err := DecodeInt(sh.Share)
	if err != nil {
		return Share{}, fmt.Errorf("share: %w", err)
	}
	modulus, err := DecodeInt(sh.PrimeMod)
	if err != nil {
		return Share{}, fmt.Errorf("prime_mod: %w", err)
	}

	return Share{
		Index:     sh.ShardIndex,
		Value:     value,
		Modulus:   modulus,
		Threshold: sh.Threshold,
		Total:     sh.TotalShards,
	}, nil
}

// ReconstructShards decodes shards and reconstructs their secret.
func ReconstructShards(shards []models.Shard, threshold int, opts ...ReconstructOption) ([]byte, error) {
	shares := make([]Share, 0, len(shards))
	for _, sh := range shards {
		s, err := FromShard(sh)
		if err != nil {
			return nil, reconstructionError(fmt.Sprintf("shard %d", sh.ShardIndex), err)
		}
		shares = append(shares, s)
	}

	return Reconstruct(shares, threshold, opts...)
}
