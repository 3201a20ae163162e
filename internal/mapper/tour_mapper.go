package mapper

import (
	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/model"
)

type TourMapper struct{}

func NewTourMapper() *TourMapper {
	return &TourMapper{}
}

func (m *TourMapper) ToEntity(t *model.Tour) *entity.Tour {
	if t == nil {
		return nil
	}
	return &entity.Tour{
		Id:               t.Id,
		Title:            t.Title,
		Slug:             t.Slug,
		CategoryId:       t.CategoryId,
		ShortDescription: t.ShortDescription,
		LongDescription:  t.LongDescription,
		Days:             t.Days,
		MinGroup:         t.MinGroup,
		MaxGroup:         t.MaxGroup,
		BasePrice:        t.BasePrice,
		Currency:         t.Currency,
		DiscountPercent:  t.DiscountPercent,
		DiscountAmount:   t.DiscountAmount,
		Difficulty:       entity.TourDifficulty(t.Difficulty),
		IsFeatured:       t.IsFeatured,
		Status:           entity.TourStatus(t.Status),
		MetaTitle:        t.MetaTitle,
		MetaDescription:  t.MetaDescription,
		Order:            t.Order,
		Base:             baseToEntity(t.Base),
	}
}

func (m *TourMapper) ToModel(t *entity.Tour) *model.Tour {
	if t == nil {
		return nil
	}
	return &model.Tour{
		Id:               t.Id,
		Title:            t.Title,
		Slug:             t.Slug,
		CategoryId:       t.CategoryId,
		ShortDescription: t.ShortDescription,
		LongDescription:  t.LongDescription,
		Days:             t.Days,
		MinGroup:         t.MinGroup,
		MaxGroup:         t.MaxGroup,
		BasePrice:        t.BasePrice,
		Currency:         t.Currency,
		DiscountPercent:  t.DiscountPercent,
		DiscountAmount:   t.DiscountAmount,
		Difficulty:       string(t.Difficulty),
		IsFeatured:       t.IsFeatured,
		Status:           string(t.Status),
		MetaTitle:        t.MetaTitle,
		MetaDescription:  t.MetaDescription,
		Order:            t.Order,
		Base:             baseToModel(t.Base),
	}
}

func (m *TourMapper) ToEntities(tours []*model.Tour) []*entity.Tour {
	entities := make([]*entity.Tour, len(tours))
	for i, t := range tours {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TourMapper) CategoryToEntity(c *model.TourCategory) *entity.TourCategory {
	if c == nil {
		return nil
	}
	return &entity.TourCategory{
		Id:    c.Id,
		Name:  c.Name,
		Slug:  c.Slug,
		Order: c.Order,
		Base:  baseToEntity(c.Base),
	}
}

func (m *TourMapper) CategoryToModel(c *entity.TourCategory) *model.TourCategory {
	if c == nil {
		return nil
	}
	return &model.TourCategory{
		Id:    c.Id,
		Name:  c.Name,
		Slug:  c.Slug,
		Order: c.Order,
		Base:  baseToModel(c.Base),
	}
}

func (m *TourMapper) TagToEntity(t *model.TourTag) *entity.TourTag {
	if t == nil {
		return nil
	}
	return &entity.TourTag{
		Id:   t.Id,
		Name: t.Name,
		Slug: t.Slug,
		Base: baseToEntity(t.Base),
	}
}

func (m *TourMapper) TagToModel(t *entity.TourTag) *model.TourTag {
	if t == nil {
		return nil
	}
	return &model.TourTag{
		Id:   t.Id,
		Name: t.Name,
		Slug: t.Slug,
		Base: baseToModel(t.Base),
	}
}

func (m *TourMapper) StopToEntity(s *model.TourStop) *entity.TourStop {
	if s == nil {
		return nil
	}
	return &entity.TourStop{
		Id:         s.Id,
		TourId:     s.TourId,
		Order:      s.Order,
		CountryId:  s.CountryId,
		CityId:     s.CityId,
		StayNights: s.StayNights,
		Note:       s.Note,
		Base:       baseToEntity(s.Base),
	}
}

func (m *TourMapper) StopToModel(s *entity.TourStop) *model.TourStop {
	if s == nil {
		return nil
	}
	return &model.TourStop{
		Id:         s.Id,
		TourId:     s.TourId,
		Order:      s.Order,
		CountryId:  s.CountryId,
		CityId:     s.CityId,
		StayNights: s.StayNights,
		Note:       s.Note,
		Base:       baseToModel(s.Base),
	}
}

func (m *TourMapper) ItineraryDayToEntity(d *model.ItineraryDay) *entity.ItineraryDay {
	if d == nil {
		return nil
	}
	return &entity.ItineraryDay{
		Id:          d.Id,
		TourId:      d.TourId,
		DayNumber:   d.DayNumber,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Base:        baseToEntity(d.Base),
	}
}

func (m *TourMapper) ItineraryDayToModel(d *entity.ItineraryDay) *model.ItineraryDay {
	if d == nil {
		return nil
	}
	return &model.ItineraryDay{
		Id:          d.Id,
		TourId:      d.TourId,
		DayNumber:   d.DayNumber,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Base:        baseToModel(d.Base),
	}
}

func (m *TourMapper) ImageToEntity(i *model.TourImage) *entity.TourImage {
	if i == nil {
		return nil
	}
	return &entity.TourImage{
		Id:      i.Id,
		TourId:  i.TourId,
		Image:   i.Image,
		Alt:     i.Alt,
		IsCover: i.IsCover,
		Order:   i.Order,
		Base:    baseToEntity(i.Base),
	}
}

func (m *TourMapper) ImageToModel(i *entity.TourImage) *model.TourImage {
	if i == nil {
		return nil
	}
	return &model.TourImage{
		Id:      i.Id,
		TourId:  i.TourId,
		Image:   i.Image,
		Alt:     i.Alt,
		IsCover: i.IsCover,
		Order:   i.Order,
		Base:    baseToModel(i.Base),
	}
}

func (m *TourMapper) VideoToEntity(v *model.TourVideo) *entity.TourVideo {
	if v == nil {
		return nil
	}
	return &entity.TourVideo{
		Id:       v.Id,
		TourId:   v.TourId,
		Provider: entity.VideoProvider(v.Provider),
		URL:      v.URL,
		Title:    v.Title,
		Order:    v.Order,
		Base:     baseToEntity(v.Base),
	}
}

func (m *TourMapper) VideoToModel(v *entity.TourVideo) *model.TourVideo {
	if v == nil {
		return nil
	}
	return &model.TourVideo{
		Id:       v.Id,
		TourId:   v.TourId,
		Provider: string(v.Provider),
		URL:      v.URL,
		Title:    v.Title,
		Order:    v.Order,
		Base:     baseToModel(v.Base),
	}
}

func (m *TourMapper) DepartureToEntity(d *model.TourDeparture) *entity.TourDeparture {
	if d == nil {
		return nil
	}
	return &entity.TourDeparture{
		Id:         d.Id,
		TourId:     d.TourId,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		SeatsTotal: d.SeatsTotal,
		SeatsLeft:  d.SeatsLeft,
		Base:       baseToEntity(d.Base),
	}
}

func (m *TourMapper) DepartureToModel(d *entity.TourDeparture) *model.TourDeparture {
	if d == nil {
		return nil
	}
	return &model.TourDeparture{
		Id:         d.Id,
		TourId:     d.TourId,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		SeatsTotal: d.SeatsTotal,
		SeatsLeft:  d.SeatsLeft,
		Base:       baseToModel(d.Base),
	}
}
