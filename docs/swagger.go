// Package docs Airport Catalog Service API.
//
// Микросервис каталога аэродромов. Предоставляет API для поиска ближайших
// аэродромов по координатам, текстового поиска по названию и муниципалитету,
// а также статистики по загруженному каталогу.
//
// Основные возможности:
// - Поиск ближайшего аэродрома к точке (с опциональным радиусом и фильтром по категориям)
// - Поиск K ближайших аэродромов с расстоянием до каждого
// - Текстовый поиск с ранжированием (префикс названия, префикс муниципалитета, подстрока)
// - Получение аэродрома по идентификатору (ICAO/local ident)
// - Статистика по загруженным данным
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
