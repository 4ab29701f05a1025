package valuekey

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Leading type tags keep values of different kinds from ever sharing an
// encoding, while values of the same kind and magnitude encode identically
// regardless of Go width.
const (
	tagNil byte = iota
	tagFalse
	tagTrue
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagTime
	tagOther
)

// Encode produces a canonical, type-tagged byte encoding of a column value,
// suitable for hashing and for byte-wise equality comparison. int8(3) and
// int64(3) share an encoding, while int64(1), uint64(1), float64(1) and "1"
// are four distinct encodings. Values of types with no dedicated encoding
// fall back to their Go type and string representation.
func Encode(value interface{}) []byte {
	switch v := value.(type) {
	case nil:
		return []byte{tagNil}
	case bool:
		if v {
			return []byte{tagTrue}
		}
		return []byte{tagFalse}
	case int:
		return encodeUint64(tagInt, uint64(int64(v)))
	case int8:
		return encodeUint64(tagInt, uint64(int64(v)))
	case int16:
		return encodeUint64(tagInt, uint64(int64(v)))
	case int32:
		return encodeUint64(tagInt, uint64(int64(v)))
	case int64:
		return encodeUint64(tagInt, uint64(v))
	case uint:
		return encodeUint64(tagUint, uint64(v))
	case uint8:
		return encodeUint64(tagUint, uint64(v))
	case uint16:
		return encodeUint64(tagUint, uint64(v))
	case uint32:
		return encodeUint64(tagUint, uint64(v))
	case uint64:
		return encodeUint64(tagUint, v)
	case uintptr:
		return encodeUint64(tagUint, uint64(v))
	case float32:
		return encodeFloat64(float64(v))
	case float64:
		return encodeFloat64(v)
	case string:
		return append([]byte{tagString}, v...)
	case []byte:
		return append([]byte{tagBytes}, v...)
	case time.Time:
		return encodeUint64(tagTime, uint64(v.UnixNano()))
	default:
		return append([]byte{tagOther}, fmt.Sprintf("%T\x00%v", value, value)...)
	}
}

func encodeUint64(tag byte, bits uint64) []byte {
	buf := make([]byte, 9)
	buf[0] = tag
	binary.BigEndian.PutUint64(buf[1:], bits)
	return buf
}

// encodeFloat64 normalizes negative zero so that -0.0 and 0.0, which compare
// equal, also encode identically
func encodeFloat64(f float64) []byte {
	if f == 0 {
		f = 0
	}
	return encodeUint64(tagFloat, math.Float64bits(f))
}
