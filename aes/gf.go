package aes

// GF(2^8) arithmetic over the AES reduction polynomial x^8+x^4+x^3+x+1.
// Multiplication goes through log/exp tables built once at package init;
// 0x03 generates the multiplicative group, so exp[i] = 3^i and log is its
// inverse mapping.

var logTable, expTable = buildLogExpTables()

func buildLogExpTables() (log, exp [256]byte) {
	x := byte(1)
	for i := range 255 {
		exp[i] = x
		log[x] = byte(i)
		// Multiply x by the generator 0x03: x*2 + x.
		x ^= xtime(x)
	}
	exp[255] = exp[0]
	return log, exp
}

// xtime multiplies by x (0x02) with reduction.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// gfMul multiplies two field elements. log(0) is undefined, so a zero factor
// is handled before the table lookup.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(int(logTable[a])+int(logTable[b]))%255]
}

func buildMulTable(mult byte) [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		table[i] = gfMul(byte(i), mult)
	}
	return table
}

// Per-multiplier tables for the forward {02,03,01,01} and inverse
// {0e,0b,0d,09} MixColumns circulants.
var (
	mul2Table  = buildMulTable(0x02)
	mul3Table  = buildMulTable(0x03)
	mul9Table  = buildMulTable(0x09)
	mul11Table = buildMulTable(0x0b)
	mul13Table = buildMulTable(0x0d)
	mul14Table = buildMulTable(0x0e)
)
