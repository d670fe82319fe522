package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/haukened/hkid/internal/domain"
)

func (c *cli) generate(args []string) int {
	if len(args) != 0 {
		c.flags.Usage()
		return exitUsage
	}
	prefix := c.cfg.Prefix
	if f := c.flags.Lookup("prefix"); f != nil && f.Value.String() != "" {
		prefix = f.Value.String()
	}

	var (
		h   domain.HKID
		err error
	)
	if prefix == "" {
		h, err = c.svc.Generate(c.cfg.MustExist)
	} else {
		h, err = c.svc.GenerateWithPrefix(prefix, c.cfg.MustExist)
	}
	if err != nil {
		return c.fail(err, prefix)
	}
	c.log.Info("generated", "prefix", h.Prefix.String(), "known", h.Prefix.Known())

	if c.cfg.Output == "json" {
		return c.writeJSON(struct {
			HKID        string `json:"hkid"`
			Prefix      string `json:"prefix"`
			Description string `json:"description"`
		}{HKID: h.String(), Prefix: h.Prefix.String(), Description: h.Prefix.Describe()})
	}
	fmt.Fprintln(c.stdout, h.String())
	return exitOK
}

func (c *cli) validate(args []string) int {
	if len(args) != 1 {
		c.flags.Usage()
		return exitUsage
	}
	input := args[0]
	ok, err := c.svc.Validate(input, c.cfg.MustExist)
	if err != nil {
		return c.fail(err, input)
	}
	c.log.Info("validated", "valid", ok)

	code := exitOK
	if !ok {
		code = exitInvalid
	}
	if c.cfg.Output == "json" {
		c.writeJSON(struct {
			Input string `json:"input"`
			Valid bool   `json:"valid"`
		}{Input: input, Valid: ok})
		return code
	}
	if ok {
		fmt.Fprintln(c.stdout, "valid")
	} else {
		fmt.Fprintln(c.stdout, "invalid")
	}
	return code
}

type prefixOut struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *cli) prefixes(args []string) int {
	if len(args) != 0 {
		c.flags.Usage()
		return exitUsage
	}
	known := domain.KnownPrefixes()
	if c.cfg.Output == "json" {
		out := make([]prefixOut, 0, len(known))
		for _, p := range known {
			out = append(out, prefixOut{Code: p.Code.String(), Description: p.Description})
		}
		return c.writeJSON(out)
	}
	for _, p := range known {
		fmt.Fprintf(c.stdout, "%-2s  %s\n", p.Code, p.Description)
	}
	return exitOK
}

type symbolOut struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	LostCount   int    `json:"lost_count,omitempty"`
}

func (c *cli) symbol(args []string) int {
	if len(args) == 0 {
		c.flags.Usage()
		return exitUsage
	}
	var syms []domain.Symbol
	for _, a := range args {
		syms = append(syms, domain.ParseSymbols(a)...)
	}
	if c.cfg.Output == "json" {
		out := make([]symbolOut, 0, len(syms))
		for _, s := range syms {
			out = append(out, symbolOut{Code: s.Code, Kind: s.Kind.String(), Description: s.Description, LostCount: s.LostCount})
		}
		return c.writeJSON(out)
	}
	for _, s := range syms {
		fmt.Fprintf(c.stdout, "%-4s %s\n", s.Code, s.Description)
	}
	return exitOK
}

func (c *cli) writeJSON(v any) int {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		c.log.Error("write output", "err", err)
		return exitUsage
	}
	return exitOK
}

// exitCodeFor maps domain errors to process exit codes.
func exitCodeFor(err error) (code int, kind string) {
	switch {
	case errors.Is(err, domain.ErrFormat):
		return exitUsage, "format"
	case errors.Is(err, domain.ErrInvalidPrefixFormat):
		return exitUsage, "invalid_prefix"
	case errors.Is(err, domain.ErrUnknownPrefix):
		return exitUsage, "unknown_prefix"
	default:
		return exitUsage, "unhandled"
	}
}

// fail logs err, reports it to the user and returns the exit code.
func (c *cli) fail(err error, input string) int {
	code, kind := exitCodeFor(err)
	c.log.Warn("request rejected", "code", kind, "err", err)
	if c.cfg.Output == "json" {
		_ = json.NewEncoder(c.stdout).Encode(struct {
			Input string `json:"input,omitempty"`
			Error string `json:"error"`
			Code  string `json:"code"`
		}{Input: input, Error: err.Error(), Code: kind})
		return code
	}
	fmt.Fprintf(c.stderr, "hkid: %v\n", err)
	return code
}
