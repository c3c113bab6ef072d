package ordkey

import "math/big"

// Collector is a ready-made Loader.App: it records the most recently
// decoded value of whichever field kind it was handed. It exists so
// callers and tests that just want "decode one field and look at it"
// don't each have to write their own App type from scratch.
type Collector struct {
	Int      int64
	Float    float64
	Str      []byte
	StrEnc   Encoding
	BigInt   *big.Int
	BigFloat *big.Float
}

// NewCollectorLoader returns a Loader whose App is a fresh *Collector,
// with every handler wired to record into it, including the big-number
// handlers (via AttachBigHandlers).
func NewCollectorLoader() (*Loader, *Collector) {
	c := &Collector{}
	loader := NewLoader(c)
	loader.HandlerInt = collectInt
	loader.HandlerFloat = collectFloat
	loader.HandlerStr = collectStr
	AttachBigHandlers(loader)
	return loader, c
}

func collectInt(loader *Loader, value int64) error {
	c := loader.App.(*Collector)
	c.Int = value
	return nil
}

func collectFloat(loader *Loader, value float64) error {
	c := loader.App.(*Collector)
	c.Float = value
	return nil
}

func collectStr(loader *Loader, data []byte, enc Encoding) error {
	c := loader.App.(*Collector)
	c.Str = data
	c.StrEnc = enc
	return nil
}

// SetBigInt implements BigSink.
func (c *Collector) SetBigInt(v *big.Int) { c.BigInt = v }

// SetBigFloat implements BigSink.
func (c *Collector) SetBigFloat(v *big.Float) { c.BigFloat = v }
