package utils

import (
	"time"

	"github.com/speps/go-hashids/v2"
)

// GenerateOutTradeNo 生成商户订单号：前缀 + 秒级时间 + 混淆后的序号，长度不超过 32
func GenerateOutTradeNo(prefix, salt string, orderID int64) string {
	now := time.Now().Format("20060102150405")
	return prefix + now + GenHashID(salt, orderID)
}

func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

// DecodeHashID 解析 GenHashID 的结果
func DecodeHashID(salt, hash string) (int64, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(hash)
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}
