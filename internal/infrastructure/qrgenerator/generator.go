package qrgenerator

import (
	"encoding/json"

	qr "github.com/skip2/go-qrcode"

	"github.com/Xausdorf/scheme-pay/internal/domain/qrcode"
)

// Payment codes are often printed on invoices, so use a higher recovery level
// than the library default.
const recoveryLevel = qr.High

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

func (g *Generator) Generate(data qrcode.QRData) ([]byte, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	code, err := qr.New(string(content), recoveryLevel)
	if err != nil {
		return nil, err
	}
	return code.PNG(g.size)
}
