//go:build !serde_noxml

package serde

import "github.com/zoobzio/serde/xml"

const xmlEnabled = true

func registerXML(table *[formatEnd]entry) {
	table[XML] = entry{
		codec:     xml.New(),
		textOnly:  true,
		encodeErr: ErrXML,
		decodeErr: ErrXML,
	}
}
