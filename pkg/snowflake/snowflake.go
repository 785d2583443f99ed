package snowflake

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenStringID 内容主键使用字符串形式，避免前端丢失 int64 精度
func GenStringID() string {
	return strconv.FormatInt(GenID(), 10)
}
