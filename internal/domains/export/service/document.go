package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"reviewcard-backend/internal/domains/export/model"
)

// assembleDocument embeds the captured PNG as the sole content of a
// single-page PDF. The page is the standard width; its height is derived
// from the capture so the aspect ratio is preserved exactly.
func assembleDocument(pngData []byte, capturedW, capturedH int) ([]byte, error) {
	if capturedW <= 0 || capturedH <= 0 {
		return nil, fmt.Errorf("degenerate capture %dx%d", capturedW, capturedH)
	}

	pageW := model.DocumentPageWidth
	pageH := model.PageHeight(float64(capturedW), float64(capturedH), pageW)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("card", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("card", 0, 0, pageW, pageH, false, opts, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("assemble pdf: %v", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
