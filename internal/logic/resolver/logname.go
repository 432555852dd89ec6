package resolver

import (
	"strings"

	"tx-resolver-sol/internal/consts"
)

// OperationNameFromLogs 从程序日志中提取指令操作名。
//
// 两级匹配，均取原始顺序中的第一条命中：
//  1. 偏好级：行内同时含 "Instruction:" 与 subsystemMarker（大小写不敏感）；
//  2. 回退级：行内仅含 "Instruction:"。
//
// 操作名为首个 "Instruction:" 之后去除首尾空白的文本。
// 无命中返回 ok=false，属正常结果而非错误。subsystemMarker 为空时跳过偏好级。
func OperationNameFromLogs(logs []string, subsystemMarker string) (string, bool) {
	if subsystemMarker != "" {
		upperMarker := strings.ToUpper(subsystemMarker)
		for _, line := range logs {
			if strings.Contains(line, consts.InstructionLogMarker) &&
				strings.Contains(strings.ToUpper(line), upperMarker) {
				return nameAfterMarker(line), true
			}
		}
	}

	// 回退：任意含指令标记的日志行
	for _, line := range logs {
		if strings.Contains(line, consts.InstructionLogMarker) {
			return nameAfterMarker(line), true
		}
	}
	return "", false
}

func nameAfterMarker(line string) string {
	_, after, _ := strings.Cut(line, consts.InstructionLogMarker)
	return strings.TrimSpace(after)
}
