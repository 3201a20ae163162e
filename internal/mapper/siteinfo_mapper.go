package mapper

import (
	"encoding/json"

	"travel-agency-be/internal/entity"
	"travel-agency-be/internal/model"

	"gorm.io/datatypes"
)

type SiteInfoMapper struct{}

func NewSiteInfoMapper() *SiteInfoMapper {
	return &SiteInfoMapper{}
}

func (m *SiteInfoMapper) SettingsToEntity(s *model.SiteSettings) *entity.SiteSettings {
	if s == nil {
		return nil
	}
	links := map[string]string{}
	if len(s.SocialLinks) > 0 {
		// Malformed stored JSON degrades to an empty map
		_ = json.Unmarshal(s.SocialLinks, &links)
	}
	return &entity.SiteSettings{
		Id:           s.Id,
		SingletonKey: s.SingletonKey,
		OrgName:      s.OrgName,
		Slogan:       s.Slogan,
		Logo:         s.Logo,
		LogoDark:     s.LogoDark,
		Favicon:      s.Favicon,
		PrimaryPhone: s.PrimaryPhone,
		PrimaryEmail: s.PrimaryEmail,
		MetaTitle:    s.MetaTitle,
		MetaDesc:     s.MetaDesc,
		SocialLinks:  links,
		Base:         baseToEntity(s.Base),
	}
}

func (m *SiteInfoMapper) SettingsToModel(s *entity.SiteSettings) *model.SiteSettings {
	if s == nil {
		return nil
	}
	var links datatypes.JSON
	if s.SocialLinks != nil {
		raw, err := json.Marshal(s.SocialLinks)
		if err == nil {
			links = raw
		}
	}
	return &model.SiteSettings{
		Id:           s.Id,
		SingletonKey: s.SingletonKey,
		OrgName:      s.OrgName,
		Slogan:       s.Slogan,
		Logo:         s.Logo,
		LogoDark:     s.LogoDark,
		Favicon:      s.Favicon,
		PrimaryPhone: s.PrimaryPhone,
		PrimaryEmail: s.PrimaryEmail,
		MetaTitle:    s.MetaTitle,
		MetaDesc:     s.MetaDesc,
		SocialLinks:  links,
		Base:         baseToModel(s.Base),
	}
}

func (m *SiteInfoMapper) PageToEntity(p *model.Page) *entity.Page {
	if p == nil {
		return nil
	}
	return &entity.Page{
		Id:        p.Id,
		Slug:      p.Slug,
		Title:     p.Title,
		Body:      p.Body,
		MetaTitle: p.MetaTitle,
		MetaDesc:  p.MetaDesc,
		Order:     p.Order,
		Base:      baseToEntity(p.Base),
	}
}

func (m *SiteInfoMapper) PageToModel(p *entity.Page) *model.Page {
	if p == nil {
		return nil
	}
	return &model.Page{
		Id:        p.Id,
		Slug:      p.Slug,
		Title:     p.Title,
		Body:      p.Body,
		MetaTitle: p.MetaTitle,
		MetaDesc:  p.MetaDesc,
		Order:     p.Order,
		Base:      baseToModel(p.Base),
	}
}

func (m *SiteInfoMapper) PagesToEntities(pages []*model.Page) []*entity.Page {
	entities := make([]*entity.Page, len(pages))
	for i, p := range pages {
		entities[i] = m.PageToEntity(p)
	}
	return entities
}
