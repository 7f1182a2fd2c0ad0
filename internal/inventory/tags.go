package inventory

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

type tagKey struct {
	ashramID string
	category domain.AssetCategory
}

// nextAssetTag issues the next tag for the (site, category) pair, format
// <SITE4>-<CAT3>-<NNNN>. Counters are monotonic and never reclaimed: a
// category edit burns a fresh number for the new category and leaves a gap
// behind the old one.
func (s *Service) nextAssetTag(ashram *domain.Ashram, category domain.AssetCategory) string {
	s.tagMu.Lock()
	key := tagKey{ashramID: ashram.ID, category: category}
	s.tags[key]++
	n := s.tags[key]
	s.tagMu.Unlock()

	return fmt.Sprintf("%s-%s-%04d", sitePrefix(ashram.Name), category.Abbrev(), n)
}

// sitePrefix reduces a site name to the four-character tag prefix:
// uppercase, alphanumerics only, padded by convention with "ASHR" when
// nothing usable remains.
func sitePrefix(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 4 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "ASHR"
	}
	return b.String()
}

// QRPayload is the structure encoded into an asset's QR code.
type QRPayload struct {
	AshramID    string               `json:"ashramId"`
	AssetName   string               `json:"assetName"`
	AssetTag    string               `json:"assetTag"`
	Category    domain.AssetCategory `json:"category"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// generateQRCode encodes the asset identity as base64url JSON.
func (s *Service) generateQRCode(ashramID, assetName, assetTag string, category domain.AssetCategory) (string, error) {
	payload := QRPayload{
		AshramID:    ashramID,
		AssetName:   assetName,
		AssetTag:    assetTag,
		Category:    category,
		GeneratedAt: s.now(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeQRCode parses a QR payload produced by generateQRCode.
func DecodeQRCode(encoded string) (*QRPayload, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding qr payload: %w", err)
	}
	var payload QRPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing qr payload: %w", err)
	}
	return &payload, nil
}
