package mapper

import (
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/model"
)

type ApplicationMapper struct{}

func NewApplicationMapper() *ApplicationMapper {
	return &ApplicationMapper{}
}

func (m *ApplicationMapper) ToEntity(a *model.Application) *entity.Application {
	if a == nil {
		return nil
	}
	return &entity.Application{
		Id:               a.Id,
		FullName:         a.FullName,
		Phone:            a.Phone,
		Email:            a.Email,
		CountryId:        a.CountryId,
		CityId:           a.CityId,
		PreferredContact: entity.PreferredContact(a.PreferredContact),
		TourId:           a.TourId,
		AltDestination:   a.AltDestination,
		DesiredStartDate: a.DesiredStartDate,
		Days:             a.Days,
		Adults:           a.Adults,
		Children:         a.Children,
		Infants:          a.Infants,
		Currency:         a.Currency,
		BudgetFrom:       a.BudgetFrom,
		BudgetTo:         a.BudgetTo,
		Message:          a.Message,
		Status:           entity.ApplicationStatus(a.Status),
		AssignedToId:     a.AssignedToId,
		UtmSource:        a.UtmSource,
		UtmMedium:        a.UtmMedium,
		UtmCampaign:      a.UtmCampaign,
		Referrer:         a.Referrer,
		ClientIP:         a.ClientIP,
		UserAgent:        a.UserAgent,
		Base:             baseToEntity(a.Base),
	}
}

func (m *ApplicationMapper) ToModel(a *entity.Application) *model.Application {
	if a == nil {
		return nil
	}
	return &model.Application{
		Id:               a.Id,
		FullName:         a.FullName,
		Phone:            a.Phone,
		Email:            a.Email,
		CountryId:        a.CountryId,
		CityId:           a.CityId,
		PreferredContact: string(a.PreferredContact),
		TourId:           a.TourId,
		AltDestination:   a.AltDestination,
		DesiredStartDate: a.DesiredStartDate,
		Days:             a.Days,
		Adults:           a.Adults,
		Children:         a.Children,
		Infants:          a.Infants,
		Currency:         a.Currency,
		BudgetFrom:       a.BudgetFrom,
		BudgetTo:         a.BudgetTo,
		Message:          a.Message,
		Status:           string(a.Status),
		AssignedToId:     a.AssignedToId,
		UtmSource:        a.UtmSource,
		UtmMedium:        a.UtmMedium,
		UtmCampaign:      a.UtmCampaign,
		Referrer:         a.Referrer,
		ClientIP:         a.ClientIP,
		UserAgent:        a.UserAgent,
		Base:             baseToModel(a.Base),
	}
}

func (m *ApplicationMapper) ToEntities(apps []*model.Application) []*entity.Application {
	entities := make([]*entity.Application, len(apps))
	for i, a := range apps {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *ApplicationMapper) AttachmentToEntity(a *model.ApplicationAttachment) *entity.ApplicationAttachment {
	if a == nil {
		return nil
	}
	return &entity.ApplicationAttachment{
		Id:            a.Id,
		ApplicationId: a.ApplicationId,
		File:          a.File,
		Title:         a.Title,
		Base:          baseToEntity(a.Base),
	}
}

func (m *ApplicationMapper) AttachmentToModel(a *entity.ApplicationAttachment) *model.ApplicationAttachment {
	if a == nil {
		return nil
	}
	return &model.ApplicationAttachment{
		Id:            a.Id,
		ApplicationId: a.ApplicationId,
		File:          a.File,
		Title:         a.Title,
		Base:          baseToModel(a.Base),
	}
}

type ContactMessageMapper struct{}

func NewContactMessageMapper() *ContactMessageMapper {
	return &ContactMessageMapper{}
}

func (m *ContactMessageMapper) ToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:           c.Id,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Subject:      entity.ContactSubject(c.Subject),
		Message:      c.Message,
		Status:       entity.ContactStatus(c.Status),
		AssignedToId: c.AssignedToId,
		ClientIP:     c.ClientIP,
		UserAgent:    c.UserAgent,
		Referrer:     c.Referrer,
		Base:         baseToEntity(c.Base),
	}
}

func (m *ContactMessageMapper) ToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:           c.Id,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Subject:      string(c.Subject),
		Message:      c.Message,
		Status:       string(c.Status),
		AssignedToId: c.AssignedToId,
		ClientIP:     c.ClientIP,
		UserAgent:    c.UserAgent,
		Referrer:     c.Referrer,
		Base:         baseToModel(c.Base),
	}
}

func (m *ContactMessageMapper) ToEntities(msgs []*model.ContactMessage) []*entity.ContactMessage {
	entities := make([]*entity.ContactMessage, len(msgs))
	for i, c := range msgs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
