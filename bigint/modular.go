package bigint

// reduceMod canonicalizes v into [0, p), re-adding p whenever the
// truncated-toward-zero Mod left a negative residue.
func reduceMod(v, p *Int) *Int {
	r := v.Mod(p)
	if r.Sign() < 0 {
		r = r.Add(p)
	}
	return r
}

// ModPow computes base^exp mod m using left-to-right binary
// exponentiation (the same exponentiation shape CurveOps uses for
// scalar multiplication), for a non-negative exp.
func ModPow(base, exp, m *Int) *Int {
	result := One()
	b := reduceMod(base, m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = reduceMod(result.Mul(result), m)
		if exp.Bit(i) == 1 {
			result = reduceMod(result.Mul(b), m)
		}
	}
	return result
}

// Legendre returns the Legendre symbol (x/p) for an odd prime p: +1
// if x is a non-zero quadratic residue mod p, -1 if x is a
// non-residue, 0 if x ≡ 0 (mod p).
func (x *Int) Legendre(p *Int) int {
	xm := reduceMod(x, p)
	if xm.Sign() == 0 {
		return 0
	}
	e := p.Sub(One()).Div(NewInt(2))
	r := ModPow(xm, e, p)
	pMinus1 := p.Sub(One())
	switch {
	case r.Equal(One()):
		return 1
	case r.Equal(pMinus1):
		return -1
	default:
		// Only reachable if p is not actually prime; Euler's
		// criterion guarantees one of the two cases above for
		// a genuine odd prime.
		return 0
	}
}

// fp2 represents an element x + y·w of the quadratic extension
// F_p[w]/(w² - wSquare) used by SqrtMod's Cipolla step.
type fp2 struct {
	x, y *Int
}

func fp2Mul(u, v fp2, wSquare, p *Int) fp2 {
	x := reduceMod(u.x.Mul(v.x).Add(u.y.Mul(v.y).Mul(wSquare)), p)
	y := reduceMod(u.x.Mul(v.y).Add(v.x.Mul(u.y)), p)
	return fp2{x: x, y: y}
}

func fp2Pow(base fp2, exp, wSquare, p *Int) fp2 {
	result := fp2{x: One(), y: Zero()}
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = fp2Mul(result, result, wSquare, p)
		if exp.Bit(i) == 1 {
			result = fp2Mul(result, base, wSquare, p)
		}
	}
	return result
}

// SqrtMod returns the smaller of the two modular square roots of x
// modulo the odd prime p, via Cipolla's algorithm: pick a random a
// such that a²-x is a quadratic non-residue, then work in
// F_p[w]/(w² - (a²-x)) and compute (a+w)^((p+1)/2); its scalar
// component is a square root of x.
//
// Returns ErrNotQuadraticResidue if x has no square root mod p.
func (x *Int) SqrtMod(p *Int) (*Int, error) {
	if p.Bit(0) == 0 {
		return nil, ErrEvenModulus
	}
	xm := reduceMod(x, p)
	if xm.Sign() == 0 {
		return Zero(), nil
	}
	if xm.Legendre(p) != 1 {
		return nil, ErrNotQuadraticResidue
	}

	var a, wSquare *Int
	for {
		candidate, err := uniformMod(p)
		if err != nil {
			return nil, err
		}
		ws := reduceMod(candidate.Mul(candidate).Sub(xm), p)
		if ws.Sign() == 0 {
			continue
		}
		if ws.Legendre(p) == -1 {
			a, wSquare = candidate, ws
			break
		}
	}

	exp := p.Add(One()).Div(NewInt(2))
	res := fp2Pow(fp2{x: a, y: One()}, exp, wSquare, p)

	s := res.x
	pMinusS := reduceMod(p.Sub(s), p)
	if pMinusS.Cmp(s) < 0 {
		return pMinusS, nil
	}
	return s, nil
}
