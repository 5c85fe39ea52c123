package utils

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// ResponseHandler provides standardized response methods for commands and
// components.
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// ErrorType represents different categories of errors for consistent handling
type ErrorType int

const (
	// UserError - user input issues, validation failures, parameter problems
	UserError ErrorType = iota
	// SystemError - store failures, network issues, internal errors
	SystemError
	// NotFoundError - requested resources don't exist
	NotFoundError
	// PermissionError - unauthorized actions, restricted channels
	PermissionError
)

func errorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case NotFoundError:
		return "🔍"
	case PermissionError:
		return "🚫"
	default:
		return "❌"
	}
}

func errorColor(errorType ErrorType) int {
	switch errorType {
	case UserError:
		return Colors["Justice"]
	case NotFoundError:
		return Colors["Basic"]
	default:
		return Colors["Aggression"]
	}
}

// ContentEmbed wraps plain content the way every bot reply is presented.
func ContentEmbed(content string) discord.Embed {
	return discord.Embed{
		Description: content,
		Color:       DefaultColor,
	}
}

// CreateContentEmbed replies to a command with content as a bare embed.
func (h *ResponseHandler) CreateContentEmbed(event *handler.CommandEvent, content string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{ContentEmbed(content)},
	})
}

// CreateClassifiedError creates an error response with categorized styling.
func (h *ResponseHandler) CreateClassifiedError(event *handler.CommandEvent, errorType ErrorType, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: errorPrefix(errorType) + " " + message,
			Color:       errorColor(errorType),
		}},
		Flags: errorFlags(errorType),
	})
}

// User input and permission failures stay between the bot and the requester.
func errorFlags(errorType ErrorType) discord.MessageFlags {
	if errorType == UserError || errorType == PermissionError {
		return discord.MessageFlagEphemeral
	}
	return discord.MessageFlagsNone
}

// CreateUserError creates an ephemeral response for user input issues.
func (h *ResponseHandler) CreateUserError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, UserError, message)
}

// CreatePermissionError creates an ephemeral denial response.
func (h *ResponseHandler) CreatePermissionError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, PermissionError, message)
}

// CreateSystemError surfaces the generic apology for unexpected failures.
func (h *ResponseHandler) CreateSystemError(event *handler.CommandEvent) error {
	return h.CreateContentEmbed(event, ErrorApology)
}

// CreateNotFoundError creates an informational zero-results response.
func (h *ResponseHandler) CreateNotFoundError(event *handler.CommandEvent) error {
	return h.CreateContentEmbed(event, NoResultsMessage)
}

// ComponentApology builds the ephemeral reply sent to users interacting with
// components they do not own.
func ComponentApology(message string) discord.MessageCreate {
	return discord.MessageCreate{
		Embeds: []discord.Embed{ContentEmbed(message)},
		Flags:  discord.MessageFlagEphemeral,
	}
}
