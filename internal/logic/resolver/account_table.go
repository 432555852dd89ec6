package resolver

import (
	"tx-resolver-sol/internal/pkg/types"
)

// AccountTable 是一笔交易的完整账户表：
// 静态账户在前，随后依次是 lookup table 加载的 writable 与 readonly 地址。
// 这一拼接顺序即指令 accountIndex 的规范索引空间，所有组件共用。
//
// 除扁平地址序列外，表内还保留静态前缀长度与 writable 加载组长度：
// 权限判定对静态区间与加载区间采用不同规则，两个长度缺一不可。
type AccountTable struct {
	keys           []types.Pubkey
	staticLen      int
	loadedWritable int
}

// BuildAccountTable 将 message.accountKeys 与 Address Lookup Table 中的
// writable / readonly 地址顺序拼接为一张账户表。
//
// 纯结构拼接：不去重、不排序、不校验地址内容，不修改入参；
// legacy 交易（两个加载组为空）得到与静态列表逐项相等的表。
//
// 性能设计说明：
//   - 预计算总长度，一次性分配目标切片，避免 append 扩容；
//   - 使用单一索引顺序写入，有助于 CPU cache 命中。
func BuildAccountTable(static, loadedWritable, loadedReadonly []types.Pubkey) *AccountTable {
	total := len(static) + len(loadedWritable) + len(loadedReadonly)
	keys := make([]types.Pubkey, total)

	i := 0 // 写入索引

	// 主账户部分（来自 message.accountKeys）
	for _, k := range static {
		keys[i] = k
		i++
	}

	// Address Table 中的 writable 部分
	for _, k := range loadedWritable {
		keys[i] = k
		i++
	}

	// Address Table 中的 readonly 部分
	for _, k := range loadedReadonly {
		keys[i] = k
		i++
	}

	return &AccountTable{
		keys:           keys,
		staticLen:      len(static),
		loadedWritable: len(loadedWritable),
	}
}

// Len 返回账户表总长度（静态 + 加载）。
func (t *AccountTable) Len() int {
	return len(t.keys)
}

// StaticLen 返回静态前缀长度 S。
func (t *AccountTable) StaticLen() int {
	return t.staticLen
}

// LoadedWritableLen 返回 writable 加载组长度。
func (t *AccountTable) LoadedWritableLen() int {
	return t.loadedWritable
}

// Keys 返回扁平账户序列（调用方不得修改）。
func (t *AccountTable) Keys() []types.Pubkey {
	return t.keys
}

// Get 按索引取账户，越界返回 ok=false。
func (t *AccountTable) Get(i int) (types.Pubkey, bool) {
	if i < 0 || i >= len(t.keys) {
		return types.Pubkey{}, false
	}
	return t.keys[i], true
}

// IndexOf 返回地址在表内的首个位置，不存在返回 -1。
func (t *AccountTable) IndexOf(p types.Pubkey) int {
	for i, k := range t.keys {
		if k == p {
			return i
		}
	}
	return -1
}
