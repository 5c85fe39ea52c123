package utils

import "time"

// Embed colors keyed by card classification, with the villain override
// applied by the embed builders.
var Colors = map[string]int{
	"Aggression":    0xB22222,
	"Basic":         0x8A8A8A,
	"Determination": 0xB03060,
	"Encounter":     0xE8842C,
	"Hero":          0x2C72E8,
	"Justice":       0xE8D22C,
	"Leadership":    0x36AEE0,
	"Protection":    0x3CB371,
	"Villain":       0x7B2CE8,
	"Default":       0x23272A,
}

const DefaultColor = 0x23272A

// Symbols replace the inline resource/icon tokens printed on cards.
var Symbols = map[string]string{
	"{e}": "⚡",
	"{m}": "🧠",
	"{p}": "👊",
	"{w}": "🃏",
	"{u}": "✷ ",
	"{a}": "💥",
	"{c}": "🌀",
	"{h}": "☣️",
	"{s}": "⭐",
}

// ResourceConverter maps the /card resource choices onto the printed tokens.
var ResourceConverter = map[string]string{
	"energy":   "{e}",
	"mental":   "{m}",
	"physical": "{p}",
	"wild":     "{w}",
}

const (
	InteractApology  = "Sorry, only the user who invoked the command can do that!"
	LoadApology      = "Loading, please wait..."
	TimeoutApology   = "The timeout was reached..."
	CancelApology    = "Selection was canceled..."
	ErrorApology     = "Something went wrong... Check the logs to find out more."
	NoResultsMessage = "No results were found for the given query..."
	MaxImagesApology = "Not all results could be shown — the maximum number of images was reached."
)

const (
	// SelectTimeout bounds how long a result selector stays open.
	SelectTimeout = 20 * time.Second
	// NavigateTimeout is the navigator's idle timeout, re-armed per event.
	NavigateTimeout = 15 * time.Second
)

const (
	// Tile dimensions of one composited card image.
	ImageWidth  = 300
	ImageHeight = 419

	ImagesPerRow   = 5
	MaxAttachments = 10

	// MaxSelectOptions is Discord's cap on select menu entries.
	MaxSelectOptions = 25
)

// CacheExpiration bounds how long a cached search result may be served.
const CacheExpiration = 10 * time.Minute
