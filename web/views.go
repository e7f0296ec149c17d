package web

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/luca-patrignani/blackjack/ledger"
)

// StylesheetPath is where the handler serves the page stylesheet.
const StylesheetPath = "/static/blackjack.css"

const stylesheet = `body { font-family: sans-serif; background: #0b6623; color: #fff; }
main { max-width: 48rem; margin: 2rem auto; }
.hand { display: flex; gap: .5rem; margin: .5rem 0 1rem; }
.card { width: 4rem; height: 5.5rem; border-radius: .4rem; background: #fff;
        display: flex; flex-direction: column; align-items: center; justify-content: center;
        font-size: 1.4rem; }
.card.red { color: #c00; }
.card.black { color: #111; }
.card.face-down { background: repeating-linear-gradient(45deg, #234, #234 6px, #345 6px, #345 12px); }
.outcome.win { color: #ffd700; }
.outcome.lose { color: #fbb; }
form { display: inline; }
table { border-collapse: collapse; }
td, th { padding: .25rem .75rem; border-bottom: 1px solid #3a7; }
`

type attr struct {
	name, value string
}

// attrs pairs up name, value arguments. Order is kept in the output.
func attrs(kv ...string) []attr {
	out := make([]attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, attr{name: kv[i], value: kv[i+1]})
	}
	return out
}

func writeStrings(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

func openTag(w io.Writer, tag string, as []attr) error {
	if err := writeStrings(w, "<", tag); err != nil {
		return err
	}
	for _, a := range as {
		if err := writeStrings(w, " ", a.name, `="`, templ.EscapeString(a.value), `"`); err != nil {
			return err
		}
	}
	return writeStrings(w, ">")
}

// el renders a tag wrapping children.
func el(tag string, as []attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(w, tag, as); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return writeStrings(w, "</", tag, ">")
	})
}

// void renders a tag without content or closing tag.
func void(tag string, as []attr) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return openTag(w, tag, as)
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeStrings(w, templ.EscapeString(s))
	})
}

// layout wraps the children found in ctx in the document shell.
func layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return el("html", attrs("lang", "en"),
			el("head", nil,
				void("meta", attrs("charset", "utf-8")),
				el("title", nil, text(title)),
				void("link", attrs("rel", "stylesheet", "href", StylesheetPath)),
			),
			el("body", nil, el("main", nil, templ.GetChildren(ctx))),
		).Render(ctx, w)
	})
}

func page(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout(title).Render(templ.WithChildren(ctx, templ.Join(body...)), w)
	})
}

func postButton(action, label string) templ.Component {
	return el("form", attrs("method", "post", "action", action),
		el("button", attrs("type", "submit"), text(label)),
	)
}

func link(href, label string) templ.Component {
	return el("a", attrs("href", href), text(label))
}

func cardComponent(c CardView) templ.Component {
	if c.FaceDown {
		return el("div", attrs("class", "card face-down"))
	}
	return el("div", attrs("class", "card "+c.Color),
		el("span", nil, text(c.Rank)),
		el("span", nil, text(c.Suit)),
	)
}

func handComponent(title string, cards []CardView, score int, partial bool) templ.Component {
	scoreLabel := strconv.Itoa(score)
	if partial {
		scoreLabel += " showing"
	}
	rendered := make([]templ.Component, len(cards))
	for i, c := range cards {
		rendered[i] = cardComponent(c)
	}
	return templ.Join(
		el("h2", nil, text(title+" "), el("small", nil, text("("+scoreLabel+")"))),
		el("div", attrs("class", "hand"), rendered...),
	)
}

func gameSection(template string, id int64, children ...templ.Component) templ.Component {
	return el("section", attrs("data-template", template, "data-game-id", strconv.FormatInt(id, 10)), children...)
}

// IndexPage offers to start a new game.
func IndexPage() templ.Component {
	return page("Blackjack",
		el("h1", nil, text("Blackjack")),
		el("p", nil, text("Dealer stands on all 17s.")),
		postButton("/game", "Start game"),
		text(" "),
		link("/history", "History"),
	)
}

// GamePage renders view with the template it names.
func GamePage(view GameView) templ.Component {
	if view.Template == TemplateGameOver {
		return page("Game over", gameOver(view))
	}
	return page("Blackjack", gameInProgress(view))
}

func gameInProgress(view GameView) templ.Component {
	base := gamePath(view.ID)
	return gameSection(TemplateInProgress, view.ID,
		handComponent("Dealer", view.DealerCards, view.DealerScore, view.DealerHidden),
		handComponent("Player", view.PlayerCards, view.PlayerScore, false),
		postButton(base+"/hit", "Hit"),
		text(" "),
		postButton(base+"/stand", "Stand"),
	)
}

func gameOver(view GameView) templ.Component {
	class := "outcome lose"
	if view.PlayerWon {
		class = "outcome win"
	}
	return gameSection(TemplateGameOver, view.ID,
		el("h1", attrs("class", class), text(view.Outcome)),
		handComponent("Dealer", view.DealerCards, view.DealerScore, false),
		handComponent("Player", view.PlayerCards, view.PlayerScore, false),
		postButton("/game", "Play again"),
		text(" "),
		link("/history", "History"),
	)
}

func historyRow(b ledger.Block) templ.Component {
	r := b.Record
	cell := func(s string) templ.Component { return el("td", nil, text(s)) }
	return el("tr", nil,
		cell(strconv.FormatInt(r.GameID, 10)),
		cell(strings.Join(r.PlayerCards, " ")+" ("+strconv.Itoa(r.PlayerScore)+")"),
		cell(strings.Join(r.DealerCards, " ")+" ("+strconv.Itoa(r.DealerScore)+")"),
		cell(r.Outcome),
		el("td", nil, el("code", nil, text(shortHash(b.Hash)))),
	)
}

func historyTable(blocks []ledger.Block) templ.Component {
	if len(blocks) == 0 {
		return el("p", nil, text("No finished games yet."))
	}
	header := make([]templ.Component, 0, 5)
	for _, h := range []string{"Game", "Player", "Dealer", "Outcome", "Hash"} {
		header = append(header, el("th", nil, text(h)))
	}
	rows := make([]templ.Component, 0, len(blocks))
	for i := len(blocks) - 1; i >= 0; i-- {
		rows = append(rows, historyRow(blocks[i]))
	}
	return el("table", nil,
		el("thead", nil, el("tr", nil, header...)),
		el("tbody", nil, rows...),
	)
}

// HistoryPage lists finished games, newest first.
func HistoryPage(blocks []ledger.Block) templ.Component {
	return page("History",
		el("h1", nil, text("History")),
		historyTable(blocks),
		postButton("/game", "Start game"),
	)
}

// ErrorPage renders an HTTP error with a link back to the start page.
func ErrorPage(status int, message string) templ.Component {
	return page(http.StatusText(status),
		el("h1", nil, text(strconv.Itoa(status)+" "+http.StatusText(status))),
		el("p", nil, text(message)),
		link("/", "Back"),
	)
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
