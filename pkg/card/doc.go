// Package card embeds character profiles in PNG images.
//
// A character card is an ordinary image whose chunk stream carries a tEXt
// record with the keyword "chara". The record's text is the base64 encoding
// of a JSON profile document following the chara_card_v2 schema:
//
//	{ "spec": "chara_card_v2", "spec_version": "2.0",
//	  "data": { "name": ..., "description": ..., "tags": [...], "extensions": {...} } }
//
// DecodeProfile and EncodeProfileInto are the two entry points. Both the CLI
// and the HTTP API go through them.
//
// Older tools write the character fields at the top level of the document
// instead of under "data". Decoding accepts both shapes; encoding always
// writes the nested one.
//
// When an image holds more than one "chara" record, decoding returns the
// first in stream order. Encoding never removes an existing record, so
// re-encoding an already exported card leaves the old profile first.
package card
