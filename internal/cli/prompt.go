package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter は対話入力の読み取り。2番目の戻り値がfalseなら入力が尽きている。
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Line(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Int は整数が入るまで聞き直す。
func (p *Prompter) Int(prompt string) (int64, bool) {
	for {
		s, ok := p.Line(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter an integer.")
			continue
		}
		return n, true
	}
}

// Decimal は数値（小数可）が入るまで聞き直す。価格入力用。
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, bool) {
	for {
		s, ok := p.Line(prompt)
		if !ok {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		return d, true
	}
}
