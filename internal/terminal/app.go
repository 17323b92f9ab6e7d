package terminal

import (
	"context"
	"time"

	"rogue-engine/internal/agent"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine"
	"rogue-engine/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// DefaultAutoplayDelay - пауза между ходами бота, чтобы за ним можно было следить.
const DefaultAutoplayDelay = 150 * time.Millisecond

type Options struct {
	// Autoplay - ходит бот, клавиатура работает только для выхода и меню.
	Autoplay bool
	Delay    time.Duration
}

// App - локальная игра в терминале поверх одной Session.
type App struct {
	session *engine.Session
	screen  tcell.Screen
	render  *Renderer
	input   Input
	bot     *agent.Bot
	delay   time.Duration
	log     *logrus.Entry
}

func NewApp(session *engine.Session, screen tcell.Screen, opts Options) *App {
	a := &App{
		session: session,
		screen:  screen,
		render:  NewRenderer(screen, session.Config().LogLines),
		delay:   opts.Delay,
		log:     logger.Log.WithField("component", "terminal"),
	}
	if opts.Autoplay {
		a.bot = agent.NewBot()
		if a.delay <= 0 {
			a.delay = DefaultAutoplayDelay
		}
	}
	return a
}

// Run крутит цикл ввода и отрисовки до QUIT или отмены ctx.
// Экран должен быть уже инициализирован, Fini вызывает вызывающий.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)
	defer close(quit)

	var tick <-chan time.Time
	if a.bot != nil {
		ticker := time.NewTicker(a.delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	a.submit(domain.SimpleIntent(domain.ActionInit))
	a.draw()

	for !a.session.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if intent, ok := a.input.Handle(ev); ok {
					a.submit(intent)
				}
			}

		case <-tick:
			if a.input.Mode() == ModeMap {
				a.submit(a.bot.Decide(*engine.BuildSnapshot(a.session, 0)))
			}
		}
		a.draw()
	}

	a.log.WithFields(logrus.Fields{
		"turn":  a.session.Turn(),
		"state": a.session.State().String(),
	}).Info("Terminal session closed")
	return nil
}

func (a *App) submit(intent domain.Intent) {
	out := a.session.Submit(intent)
	if out.Err != nil {
		a.log.WithError(out.Err).WithField("action", intent.Action.String()).Debug("Intent rejected")
	}
}

func (a *App) draw() {
	a.render.Draw(engine.BuildSnapshot(a.session, 0), a.input.Mode())
}
