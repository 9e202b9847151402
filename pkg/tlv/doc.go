// Package tlv implements the BER-TLV record codec used by tlvkit.
//
// The tlv package parses and builds the tag-length-value framing found in
// smart-card and payment-terminal data (EMV-style tag spaces). It is the
// foundation for tlvkit's record buffers: every scan, search, and mutation
// eventually goes through Parse.
//
// # Wire Format
//
// A buffer is a sequence of records, each encoded as:
//
//	[tag: 1-2 bytes][length: 1-3 bytes][value: length bytes]
//
// Tag byte 0:
//   - bits 7-6: class (universal, application, context-specific, private)
//   - bit 5: constructed flag; the value of a constructed record is itself
//     a sequence of records
//   - bits 4-0: tag number, or 0x1F meaning the tag continues in
//     subsequent bytes
//
// Each continuation byte carries 7 bits of tag number in bits 6-0; bit 7
// set means another byte follows. This implementation stores tags in 16
// bits, so a tag wider than 2 encoded bytes is out of range: it is
// consumed but reported as tag 0.
//
// Length byte 0 with bit 7 clear holds the length directly (0-127). With
// bit 7 set, bits 6-0 give the number of following big-endian length
// bytes; only 1 or 2 are supported, keeping lengths within MaxLength.
//
// Leading 0x00 bytes before a tag are filler (EMV padding) and are
// skipped.
//
// # Parse Results
//
// Parse and DecodeTag distinguish three outcomes:
//   - err != nil: the input is malformed; scanning must stop.
//   - n == 0 and err == nil: clean end of data (nothing but filler left).
//   - n > 0: one record (or tag) was consumed.
//
// Scanning loops stop on either of the first two, but only the clean end
// marks a valid buffer boundary. Valid relies on exactly this distinction.
//
// # Ownership
//
// Record values returned by Parse, Find, and FindDeep are sub-slices of
// the input buffer. They stay valid only as long as the buffer is not
// mutated.
//
// # LTV Framing
//
// ParseLTV handles an alternate ASCII framing used by some transports:
// 4 decimal digits of total length (counting the tag digits), 2 decimal
// digits of tag, then the value.
package tlv
