package multiplexer

//go:generate mockgen -source=router.go -destination=../../../tests/mocks/router.go -package=mocks

import "context"

// MessageRouter 把合并流中的消息交给目标子系统
//
// 实现方根据 msg.Subsystem() 或 type switch 分发。
// Route 返回后请求的应答责任归子系统所有。
type MessageRouter interface {
	// Route 路由一条消息
	//
	// 返回错误时 bridge 记录日志并继续，不会结束合并流。
	Route(ctx context.Context, msg Message) error
}

// MessageRouterFunc 函数形式的 MessageRouter
type MessageRouterFunc func(ctx context.Context, msg Message) error

// Route 实现 MessageRouter
func (f MessageRouterFunc) Route(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
