package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyship/ecs"
)

type entityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

type entityBrowserCache struct {
	entities      []entityInfo
	lastTotal     int
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		cache: &entityBrowserCache{
			lastTotal:     -1,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(storage)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	filtered := filterEntities(eb.cache.entities, eb.filterText)
	totalPages := max(1, (len(filtered)+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
	eb.currentPage = min(eb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for _, entity := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
	imgui.SameLine()
	if imgui.Button("Prev") && eb.currentPage > 0 {
		eb.currentPage--
	}
	imgui.SameLine()
	if imgui.Button("Next") && eb.currentPage < totalPages-1 {
		eb.currentPage++
	}

	imgui.Separator()
	eb.renderSelected(storage)

	imgui.End()
}

func (eb *EntityBrowser) renderSelected(storage *ecs.Storage) {
	if eb.selectedEntityId == 0 || !storage.Alive(eb.selectedEntityId) {
		imgui.Text("No entity selected")
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d", eb.selectedEntityId))
	for _, line := range DescribeEntity(storage, eb.selectedEntityId) {
		imgui.BulletText(line)
	}
}

// DescribeEntity returns one "Type: value" line per component of a live entity.
func DescribeEntity(storage *ecs.Storage, id ecs.EntityId) []string {
	archetype := storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil || !archetype.Contains(id) {
		return nil
	}

	lines := make([]string, 0, len(archetype.Types()))
	for _, t := range archetype.Types() {
		component := storage.GetComponent(id, t)
		if component == nil {
			continue
		}
		value := reflect.ValueOf(component).Elem().Interface()
		lines = append(lines, fmt.Sprintf("%s: %+v", t.Name(), value))
	}
	return lines
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(storage *ecs.Storage) {
	total := 0
	storage.Archetypes(func(archetype *ecs.Archetype) bool {
		total += archetype.Len()
		return true
	})

	if eb.cache.lastTotal != total {
		eb.rebuildCache(storage)
		eb.cache.lastTotal = total
	}
}

func (eb *EntityBrowser) rebuildCache(storage *ecs.Storage) {
	eb.cache.entities = eb.cache.entities[:0]

	storage.Archetypes(func(archetype *ecs.Archetype) bool {
		componentTypes := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			componentTypes[i] = t.Name()
		}

		for entityId := range archetype.Iter() {
			eb.cache.entities = append(eb.cache.entities, entityInfo{
				ID:             entityId,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: componentTypes,
			})
		}
		return true
	})

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 1:
			less = a.ArchetypeID < b.ArchetypeID || (a.ArchetypeID == b.ArchetypeID && a.ID < b.ID)
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

// filterEntities keeps entities whose id, archetype or component names contain filter (case-insensitive).
func filterEntities(entities []entityInfo, filter string) []entityInfo {
	if filter == "" {
		return entities
	}

	filtered := make([]entityInfo, 0, len(entities))
	filterLower := strings.ToLower(filter)

	for _, entity := range entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		archStr := fmt.Sprintf("0x%x", entity.ArchetypeID)
		componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

		if strings.Contains(idStr, filterLower) ||
			strings.Contains(archStr, filterLower) ||
			strings.Contains(componentsStr, filterLower) {
			filtered = append(filtered, entity)
		}
	}

	return filtered
}

func (eb *EntityBrowser) SelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}
