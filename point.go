package main

type Pt struct {
	X int64 `yaml:"X"`
	Y int64 `yaml:"Y"`
}

func (p *Pt) Add(other Pt) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply int64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) DivBy(divide int64) Pt {
	return Pt{p.X / divide, p.Y / divide}
}

func (p Pt) Negated() Pt {
	return Pt{-p.X, -p.Y}
}
