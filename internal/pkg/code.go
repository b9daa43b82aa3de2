package pkg

import (
	cryptoRand "crypto/rand"
	"fmt"
	"math/big"
)

// RandDigits 生成 n 位数字验证码，不足位补前导零
func RandDigits(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	x, err := cryptoRand.Int(cryptoRand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", n, x), nil
}
