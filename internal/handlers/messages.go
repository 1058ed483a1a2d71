package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/wnjuguna/portfolio/internal/mailer"
	"github.com/wnjuguna/portfolio/internal/store"
)

func (h *Handlers) MessagesManage(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Store.MessageList(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	unread, err := h.Store.MessageUnreadCount(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, "messages.html", map[string]any{
		"Messages":    msgs,
		"UnreadCount": unread,
	})
}

// MessageDetail shows a single message and marks it read as a side effect.
// Re-opening an already-read message changes nothing.
func (h *Handlers) MessageDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	msg, err := h.Store.MessageGet(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if !msg.IsRead {
		if err := h.Store.MessageMarkRead(r.Context(), id); err != nil {
			h.serverError(w, r, err)
			return
		}
		msg.IsRead = true
	}

	h.render(w, r, "message_detail.html", map[string]any{"Message": msg})
}

func (h *Handlers) MessageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	if err := h.Store.MessageDelete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}
	h.flash(w, r, "success", "Message deleted successfully!")
	http.Redirect(w, r, "/dashboard/messages/", http.StatusSeeOther)
}

// ReplyToMessage saves the admin's reply and emails it to the sender.
// Saving and delivering are separate outcomes: a failed send keeps the
// saved reply and downgrades the notice to a warning.
func (h *Handlers) ReplyToMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	msg, err := h.Store.MessageGet(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if r.Method == http.MethodPost {
		replyText := parseReplyText(r)
		if replyText == "" {
			h.flash(w, r, "error", "Reply cannot be empty.")
			h.render(w, r, "reply_message.html", map[string]any{"Message": msg})
			return
		}

		if _, err := h.Store.ReplyUpsert(r.Context(), msg.ID, replyText); err != nil {
			h.serverError(w, r, err)
			return
		}

		if err := h.Mailer.Send(r.Context(), mailer.ReplyEmail(msg, replyText)); err != nil {
			h.log.Warn("reply email failed", "message_id", msg.ID, "err", err)
			h.flash(w, r, "warning", fmt.Sprintf("Reply saved but email failed to send: %v", err))
		} else {
			h.flash(w, r, "success", "Reply sent successfully and email delivered!")
		}

		http.Redirect(w, r, fmt.Sprintf("/dashboard/messages/%d/", msg.ID), http.StatusSeeOther)
		return
	}

	h.render(w, r, "reply_message.html", map[string]any{"Message": msg})
}

// ReplyDelete removes a reply and returns to the parent message.
func (h *Handlers) ReplyDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	messageID, err := h.Store.ReplyDelete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.flash(w, r, "success", "Reply deleted successfully!")
	http.Redirect(w, r, fmt.Sprintf("/dashboard/messages/%d/", messageID), http.StatusSeeOther)
}
