package tlvbuf

import (
	"github.com/emvkit/tlvkit/pkg/tlv"
)

// MergeTags copies selected records from src into dst. tagList is a flat
// sequence of encoded tag identifiers (not full records); each listed tag
// found in src is added to dst with SkipIfExists, so existing records are
// never overwritten and duplicates are not errors. Records that do not
// fit are skipped silently. A malformed tag list entry stops the walk.
// The return value counts the records actually copied.
func MergeTags(dst, src *Buffer, tagList []byte) int {
	added := 0
	for len(tagList) > 0 {
		tag, n, err := tlv.DecodeTag(tagList)
		if err != nil || n == 0 {
			break
		}
		tagList = tagList[n:]

		rec, ok := src.Find(tag)
		if !ok {
			continue
		}
		_, exists := dst.Find(tag)
		if _, err := dst.Add(rec.Tag, rec.Value, SkipIfExists); err == nil && !exists {
			added++
		}
	}
	return added
}
