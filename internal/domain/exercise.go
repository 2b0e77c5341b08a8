package domain

// Body part categories. This is the fixed vocabulary every ExerciseLog.Part
// comes from; badges and the radar summary aggregate over it.
const (
	PartChest     = "가슴"
	PartBack      = "등"
	PartShoulders = "어깨"
	PartLegs      = "하체"
	PartAbs       = "복부"
)

// Parts lists the body part vocabulary in display order.
func Parts() []string {
	return []string{PartChest, PartBack, PartShoulders, PartLegs, PartAbs}
}

// Exercise is an entry in the fixed exercise catalog the user picks from
// when building a day's record.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Part        string `json:"part"`
}

var catalog = []Exercise{
	{1, "벤치프레스", "가슴 근육을 키우는 대표 운동", PartChest},
	{2, "딥스", "하부 가슴 자극", PartChest},
	{3, "푸쉬업", "기본적인 체중 가슴 운동", PartChest},
	{4, "랫풀다운", "등의 광배근을 자극", PartBack},
	{5, "바벨로우", "전체 등 근육을 강화", PartBack},
	{6, "숄더 프레스", "어깨 전면 근육 발달", PartShoulders},
	{7, "스쿼트", "하체 전반에 자극", PartLegs},
	{8, "런지", "하체 균형과 근력 강화", PartLegs},
	{9, "크런치", "복부 상부 자극", PartAbs},
	{10, "레그레이즈", "복부 하부를 자극", PartAbs},
	{11, "플랭크", "복부와 코어 안정성 강화", PartAbs},
}

// Catalog returns the exercise catalog in definition order. Callers get a
// copy; the catalog itself is immutable.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogByPart returns the catalog entries for one body part, in catalog
// order. An unknown part yields an empty slice.
func CatalogByPart(part string) []Exercise {
	var out []Exercise
	for _, ex := range catalog {
		if ex.Part == part {
			out = append(out, ex)
		}
	}
	return out
}

// ExerciseByID looks up a catalog entry by id.
func ExerciseByID(id int) (Exercise, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
