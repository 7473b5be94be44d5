package qrcode

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// FormShareURL builds the applicant-facing link encoded into share QR codes.
// PUBLIC_FORM_URL points at the console frontend; the API render URL is the
// fallback for local runs.
func FormShareURL(formID string) string {
	base := os.Getenv("PUBLIC_FORM_URL")
	if base == "" {
		base = "http://localhost:8888/api/v1/forms"
	}
	return fmt.Sprintf("%s/%s", base, formID)
}

// GenerateFormQR renders the share link for a form as a 256px PNG.
func GenerateFormQR(formID string) ([]byte, error) {
	return qrcode.Encode(FormShareURL(formID), qrcode.Medium, 256)
}
