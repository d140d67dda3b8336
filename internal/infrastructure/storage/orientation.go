package storage

import "encoding/binary"

// Orientation là bucket aspect ratio của ảnh, dùng để chọn kích thước card trên CMS
type Orientation string

const (
	OrientationSquare    Orientation = "square"
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

const (
	portraitMaxRatio  = 0.9
	landscapeMinRatio = 1.1
)

// GridSpan is the card layout label used by the CMS ("1x1", "1x2", "2x1")
func (o Orientation) GridSpan() string {
	switch o {
	case OrientationPortrait:
		return "1x2"
	case OrientationLandscape:
		return "2x1"
	default:
		return "1x1"
	}
}

// Dimensions đọc width/height từ header JPEG (SOF0) hoặc PNG (IHDR) mà không decode ảnh.
// ok = false khi không nhận ra signature hoặc buffer quá ngắn.
func Dimensions(buf []byte) (width, height int, ok bool) {
	switch {
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xD8:
		// JPEG: first FF C0 marker, height at +5, width at +7
		for i := 2; i < len(buf)-8; i++ {
			if buf[i] == 0xFF && buf[i+1] == 0xC0 {
				height = int(binary.BigEndian.Uint16(buf[i+5:]))
				width = int(binary.BigEndian.Uint16(buf[i+7:]))
				return width, height, true
			}
		}
		return 0, 0, false

	case len(buf) >= 4 && buf[0] == 0x89 && buf[1] == 0x50 && buf[2] == 0x4E && buf[3] == 0x47:
		// PNG: IHDR width/height at fixed offsets 16 and 20
		if len(buf) < 24 {
			return 0, 0, false
		}
		width = int(binary.BigEndian.Uint32(buf[16:]))
		height = int(binary.BigEndian.Uint32(buf[20:]))
		return width, height, true
	}

	return 0, 0, false
}

// DetectOrientation phân loại ảnh theo width/height:
// ratio < 0.9 → portrait, ratio > 1.1 → landscape, còn lại → square.
// Mọi trường hợp không đọc được kích thước đều trả về square.
func DetectOrientation(buf []byte) Orientation {
	width, height, ok := Dimensions(buf)
	if !ok || width <= 0 || height <= 0 {
		return OrientationSquare
	}
	return ClassifyAspect(width, height)
}

// ClassifyAspect applies the portrait/landscape thresholds to known dimensions
func ClassifyAspect(width, height int) Orientation {
	if width <= 0 || height <= 0 {
		return OrientationSquare
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio < portraitMaxRatio:
		return OrientationPortrait
	case ratio > landscapeMinRatio:
		return OrientationLandscape
	default:
		return OrientationSquare
	}
}

// CardSizeOptions maps each orientation to the option ID of the
// "memory-card-size" Option field in the memory journal collection.
type CardSizeOptions struct {
	Square    string
	Portrait  string
	Landscape string
}

// DefaultCardSizeOptions are the option IDs of the production collection
var DefaultCardSizeOptions = CardSizeOptions{
	Square:    "375ee74ef6f5816b9380663364279dfe",
	Portrait:  "9dfbeb13c30a7c8c40996b86a9b8591a",
	Landscape: "418938b7e9fde5527405832f988389da",
}

// CardSizeFields trả về các field CMS tương ứng với orientation:
// option ID, ba switch 1x1/1x2/2x1 và css-columns/css-rows
func CardSizeFields(o Orientation, opts CardSizeOptions) map[string]any {
	optionID, columns, rows := opts.Square, 1, 1
	switch o {
	case OrientationPortrait:
		optionID, columns, rows = opts.Portrait, 1, 2
	case OrientationLandscape:
		optionID, columns, rows = opts.Landscape, 2, 1
	}

	span := o.GridSpan()
	return map[string]any{
		"memory-card-size": optionID,
		"1x1":              span == "1x1",
		"1x2":              span == "1x2",
		"2x1":              span == "2x1",
		"css-columns":      columns,
		"css-rows":         rows,
	}
}
