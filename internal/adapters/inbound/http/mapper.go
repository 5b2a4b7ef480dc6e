package http

import (
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.UnknownActionErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.MissingCredentialErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toDocument(d domain.Document) Document {
	return Document{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toTodo(t domain.Todo) Todo {
	return Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodoTemplate(t domain.TodoTemplate) TodoTemplate {
	resp := TodoTemplate{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Items:       []TodoTemplateItem{},
	}
	for _, item := range t.Items {
		resp.Items = append(resp.Items, TodoTemplateItem{
			Title:       item.Title,
			Description: item.Description,
			Priority:    string(item.Priority),
		})
	}
	return resp
}

func toModel(m usecases.ModelView) Model {
	return Model{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		Selected:    m.Selected,
	}
}
