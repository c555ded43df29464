package main

import (
	"bytes"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// Page dimensions follow the capture at 96 DPI.
const (
	pixelsPerInch = 96
	mmPerInch     = 25.4
)

func pixelsToMm(pixels int) float64 {
	return float64(pixels) * mmPerInch / pixelsPerInch
}

// imageToPDF writes img as a single-page PDF sized to the image.
func imageToPDF(img image.Image, outPath, title string) error {
	bounds := img.Bounds()
	wMm := pixelsToMm(bounds.Dx())
	hMm := pixelsToMm(bounds.Dy())
	if wMm <= 0 || hMm <= 0 {
		wMm, hMm = 210, 297 // A4 fallback
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: wMm, Ht: hMm},
	})
	if title != "" {
		pdf.SetTitle(title, true)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opt, &buf)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	pdf.ImageOptions("capture", 0, 0, w, h, false, opt, 0, "")

	return pdf.OutputFileAndClose(outPath)
}
