package entity

// Intent is the per-tick movement request produced by the input layer
// XA strafes (negative left), ZA walks (negative forward)
type Intent struct {
	XA, ZA float32
	Jump   bool
	Reset  bool
}

// Controller is the per-kind tick behaviour over a shared Body
type Controller interface {
	Body() *Body
	Tick(w World, in Intent)
}
