package arw

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/arw/rational"
)

// Exact JSON persistence for a computed Distribution (the successor of the
// original pickle files). Probabilities are stored term-by-term - decimal
// coefficient strings plus exponent vectors - so a round trip loses
// nothing.

type jsonTerm struct {
	Coef string `json:"coef"`
	Exps []int  `json:"exps"`
}

type jsonExpr struct {
	Num []jsonTerm `json:"num"`
	Den []jsonTerm `json:"den,omitempty"`
}

type jsonDist struct {
	Params []string   `json:"params"`
	States [][]string `json:"states"`
	Probs  []jsonExpr `json:"probs"`
}

func encodeTerms(ts []rational.Term) []jsonTerm {
	out := make([]jsonTerm, len(ts))
	for i, t := range ts {
		out[i] = jsonTerm{Coef: t.Coef.RatString(), Exps: t.Exps}
	}

	return out
}

func decodeTerms(ts []jsonTerm) ([]rational.Term, error) {
	out := make([]rational.Term, len(ts))
	for i, t := range ts {
		c, ok := new(big.Rat).SetString(t.Coef)
		if !ok {
			return nil, fmt.Errorf("%w: bad coefficient %q", ErrCorruptDistribution, t.Coef)
		}
		out[i] = rational.Term{Coef: c, Exps: t.Exps}
	}

	return out, nil
}

// WriteJSON serializes the distribution exactly.
func (d *Distribution) WriteJSON(w io.Writer) error {
	if err := d.check(); err != nil {
		return err
	}
	doc := jsonDist{
		Params: d.field.Names(),
		States: make([][]string, len(d.States)),
		Probs:  make([]jsonExpr, len(d.Probs)),
	}
	for i, st := range d.States {
		row := make([]string, len(st))
		for j, o := range st {
			row[j] = o.String()
		}
		doc.States[i] = row
	}
	for i, p := range d.Probs {
		doc.Probs[i] = jsonExpr{Num: encodeTerms(p.Numer()), Den: encodeTerms(p.Denom())}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// ReadJSON reconstructs a distribution written by WriteJSON, rebuilding
// the rational field from the stored parameter names.
func ReadJSON(r io.Reader) (*Distribution, error) {
	var doc jsonDist
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDistribution, err)
	}
	if len(doc.States) != len(doc.Probs) {
		return nil, ErrCorruptDistribution
	}
	f := rational.NewField(doc.Params...)
	states := make([]Config, len(doc.States))
	for i, row := range doc.States {
		st := make(Config, len(row))
		for j, s := range row {
			switch s {
			case "s":
				st[j] = Asleep
			case "0", "1", "2":
				st[j] = Occupancy(s[0] - '0')
			default:
				return nil, fmt.Errorf("%w: bad occupancy %q", ErrCorruptDistribution, s)
			}
		}
		states[i] = st
	}
	probs := make([]rational.Expr, len(doc.Probs))
	for i, je := range doc.Probs {
		num, err := decodeTerms(je.Num)
		if err != nil {
			return nil, err
		}
		den, err := decodeTerms(je.Den)
		if err != nil {
			return nil, err
		}
		e, err := rational.FromTerms(f, num, den)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptDistribution, err)
		}
		probs[i] = e
	}

	return &Distribution{States: states, Probs: probs, field: f}, nil
}
