// Package v1 定义第一版请求载荷及其编解码
//
// 载荷使用 protobuf 线格式（protowire），字段编号固定：
//
//	ChunkFetchingRequest          1: candidate_hash  2: index
//	CollationFetchingRequest      1: relay_parent    2: para_id
//	PoVFetchingRequest            1: candidate_hash
//	AvailableDataFetchingRequest  1: candidate_hash
//	StatementFetchingRequest      1: relay_parent    2: candidate_hash
//	DisputeRequest                1: candidate_hash  2: session  3: valid_vote  4: invalid_vote
//	Vote                          1: validator       2: signature
//
// 整数字段和签名按 proto3 规则处理：值为零时不编码，缺失时解码为零值，
// 因此与标准 proto3 编码器互通。哈希和投票是必填字段，必须出现。
//
// 解码是纯函数：未知字段被跳过，缺少必填字段、同一字段重复出现、哈希长度错误、
// 字段类型不符或截断的数据都返回包装了 ErrMalformed 的错误。
package v1
