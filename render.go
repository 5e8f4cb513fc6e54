package arw

import (
	"fmt"
	"io"

	"github.com/katalvlaran/arw/rational"
)

// Plain text and LaTeX renderings of results, mirroring the classic
// "-states.txt", "-distribution.txt" and "-distribution-latex.txt"
// outputs.

// WriteStates writes one absorbing configuration per line.
func (d *Distribution) WriteStates(w io.Writer) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, st := range d.States {
		if _, err := fmt.Fprintln(w, st.String()); err != nil {
			return err
		}
	}

	return nil
}

// WritePretty writes a single rational expression as a numerator block, a
// fraction bar, and a denominator block.
func WritePretty(w io.Writer, e rational.Expr) error {
	_, err := fmt.Fprintf(w, "%s\n/\n%s\n\n\n\n\n", e.NumerString(), e.DenomString())

	return err
}

// WriteText writes every probability in pretty numerator-over-denominator
// form, in state order.
func (d *Distribution) WriteText(w io.Writer) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, p := range d.Probs {
		if err := WritePretty(w, p); err != nil {
			return err
		}
	}

	return nil
}

// WriteLaTeX writes one LaTeX expression per probability, one per line.
func (d *Distribution) WriteLaTeX(w io.Writer) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, p := range d.Probs {
		if _, err := fmt.Fprintln(w, p.LaTeX()); err != nil {
			return err
		}
	}

	return nil
}
