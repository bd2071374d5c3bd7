package recutil

import (
	"github.com/mitchellh/mapstructure"
)

// FromStruct converts any struct into a Record, so that typed values can
// be fed through the logging pipeline. Field names can be customized with
// the record annotation:
//
//	type Login struct {
//	    User     string `record:"user"`
//	    Password string `record:"password"`
//	}
//
// See mapstructure docs for more information:
// https://pkg.go.dev/github.com/mitchellh/mapstructure?tab=doc
func FromStruct(s any) Record {
	fields := Record{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "record",
		Result:  &fields,
	})
	if err != nil {
		return Record{"record-error": err.Error()}
	}

	err = dec.Decode(s)
	if err != nil {
		return Record{"record-error": err.Error()}
	}

	return fields
}
