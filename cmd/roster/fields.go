package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

// fieldFlags binds one string flag per employee field.
type fieldFlags map[model.Field]*string

func bindFieldFlags(cmd *cobra.Command, fields []model.Field, usage string) fieldFlags {
	ff := make(fieldFlags, len(fields))
	for _, f := range fields {
		ff[f] = cmd.Flags().String(string(f), "", fmt.Sprintf(usage, strings.ToLower(f.Label())))
	}
	return ff
}

// values returns the flags set on the command line, keyed by field.
func (ff fieldFlags) values(cmd *cobra.Command) map[model.Field]string {
	out := make(map[model.Field]string)
	for f, v := range ff {
		if cmd.Flags().Changed(string(f)) {
			out[f] = *v
		}
	}
	return out
}
