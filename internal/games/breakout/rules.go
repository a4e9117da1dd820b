package breakout

// frameRule pairs a collision predicate, evaluated against the speculative
// next ball, with the effect it has on the model.
type frameRule struct {
	event  Event
	when   func(m *Model, next Ball) bool
	effect func(m *Model, next Ball)
	halts  bool // skip committing the move this frame
}

// frameRules is evaluated in order and stops at the first match, so exactly
// one rule fires per frame. Corner must stay ahead of the plain top and side
// rules. Bottom has no corner variant: losing the ball wins over everything.
var frameRules = []frameRule{
	{
		event: EventBallLost,
		when: func(m *Model, next Ball) bool {
			return next.HitsBottom(m.cfg)
		},
		effect: func(m *Model, _ Ball) {
			m.ball = NewBall(m.paddle, m.cfg)
		},
		halts: true,
	},
	{
		event: EventCorner,
		when: func(m *Model, next Ball) bool {
			return next.HitsTop(m.cfg) && next.HitsSide(m.cfg)
		},
		effect: func(m *Model, _ Ball) {
			m.ball = m.ball.ReflectHorizontal().ReflectVertical()
		},
	},
	{
		event: EventTop,
		when: func(m *Model, next Ball) bool {
			return next.HitsTop(m.cfg)
		},
		effect: func(m *Model, _ Ball) {
			m.ball = m.ball.ReflectVertical()
		},
	},
	{
		event: EventSide,
		when: func(m *Model, next Ball) bool {
			return next.HitsSide(m.cfg)
		},
		effect: func(m *Model, _ Ball) {
			m.ball = m.ball.ReflectHorizontal()
		},
	},
	{
		event: EventPaddle,
		when: func(m *Model, next Ball) bool {
			return next.HitsBlock(m.paddle)
		},
		effect: func(m *Model, _ Ball) {
			m.ball = m.ball.ReflectVertical()
		},
	},
	{
		event: EventBrick,
		when: func(m *Model, next Ball) bool {
			return next.FirstBrick(m.bricks) >= 0
		},
		effect: func(m *Model, next Ball) {
			m.bricks, _ = next.DestroyBrick(m.bricks)
			m.ball = m.ball.ReflectVertical().Boost(m.booster.Next())
		},
	},
}
