// Package labels renders pickup labels as QR code images.
package labels

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"gocloud.dev/blob"
)

const labelType = "pickup"

// Payload is the JSON encoded in a pickup label.
type Payload struct {
	PackageID  int    `json:"package_id"`
	PickupCode string `json:"pickup_code"`
	Type       string `json:"type"`
}

// QRPrinter writes a PNG QR code per package to labels/<id>.png.
type QRPrinter struct {
	bucket *blob.Bucket
	size   int
	level  qrcode.RecoveryLevel
}

// NewQRPrinter creates a printer producing size×size pixel images.
// errorCorrectionLevel is one of L, M, Q, H; anything else means M.
func NewQRPrinter(bucket *blob.Bucket, size int, errorCorrectionLevel string) *QRPrinter {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &QRPrinter{bucket: bucket, size: size, level: level}
}

// Key returns the blob key of a package's label.
func Key(packageID int) string {
	return fmt.Sprintf("labels/%d.png", packageID)
}

func (p *QRPrinter) Print(ctx context.Context, packageID int, pickupCode string) error {
	png, err := p.Render(packageID, pickupCode)
	if err != nil {
		return err
	}

	return errors.Wrapf(
		p.bucket.WriteAll(ctx, Key(packageID), png, &blob.WriterOptions{ContentType: "image/png"}),
		"write label for package %d", packageID,
	)
}

// Render returns the PNG image without storing it.
func (p *QRPrinter) Render(packageID int, pickupCode string) ([]byte, error) {
	data, err := json.Marshal(Payload{PackageID: packageID, PickupCode: pickupCode, Type: labelType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label payload")
	}

	code, err := qrcode.New(string(data), p.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(p.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}
	return png, nil
}

// ParsePayload decodes the text scanned from a label.
func ParsePayload(text string) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Payload{}, errors.Wrap(err, "failed to unmarshal label payload")
	}
	if payload.Type != labelType {
		return Payload{}, errors.Errorf("invalid label type: %s", payload.Type)
	}
	return payload, nil
}

// NopPrinter is used when label printing is disabled.
type NopPrinter struct{}

func (NopPrinter) Print(context.Context, int, string) error {
	return nil
}
