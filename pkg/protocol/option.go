package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a setting the protocol exposes through setoption.
type Option interface {
	OptionName() string
	OptionString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) OptionName() string {
	return opt.Name
}

func (opt *BoolOption) OptionString() string {
	return fmt.Sprintf("option name %v type check default %v",
		opt.Name, *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	switch strings.ToLower(s) {
	case "on", "yes":
		*opt.Value = true
		return nil
	case "off", "no":
		*opt.Value = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("option %v: %w", opt.Name, err)
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) OptionName() string {
	return opt.Name
}

func (opt *IntOption) OptionString() string {
	return fmt.Sprintf("option name %v type spin default %v min %v max %v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("option %v: %w", opt.Name, err)
	}
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("option %v: %v out of range [%v, %v]", opt.Name, v, opt.Min, opt.Max)
	}
	*opt.Value = v
	return nil
}
