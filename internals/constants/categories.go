package constants

// Gallery categories
const (
	GalleryCategoryFarmExcursion  = "farm_excursion"
	GalleryCategoryWorkshop       = "workshop"
	GalleryCategoryCommunityEvent = "community_event"
	GalleryCategoryTraining       = "training"
	GalleryCategoryOther          = "other"
)

var GalleryCategories = []string{
	GalleryCategoryFarmExcursion,
	GalleryCategoryWorkshop,
	GalleryCategoryCommunityEvent,
	GalleryCategoryTraining,
	GalleryCategoryOther,
}

// Volunteer call categories
const (
	CallCategoryFarmWork          = "farm_work"
	CallCategoryEventSupport      = "event_support"
	CallCategoryCommunityOutreach = "community_outreach"
	CallCategoryTraining          = "training"
	CallCategoryWorkshop          = "workshop"
	CallCategoryOther             = "other"
)

var CallCategories = []string{
	CallCategoryFarmWork,
	CallCategoryEventSupport,
	CallCategoryCommunityOutreach,
	CallCategoryTraining,
	CallCategoryWorkshop,
	CallCategoryOther,
}

func IsValidGalleryCategory(cat string) bool {
	for _, c := range GalleryCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func IsValidCallCategory(cat string) bool {
	for _, c := range CallCategories {
		if c == cat {
			return true
		}
	}
	return false
}
