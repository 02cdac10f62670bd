package dto

import "hotelier/internal/domains/room/model"

// RoomStatus is the public projection served to the booking widget.
type RoomStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type GetRoomStatusesResponse struct {
	Success bool         `json:"success"`
	Rooms   []RoomStatus `json:"rooms"`
}

func (r *GetRoomStatusesResponse) FromModels(models []model.Room) {
	r.Success = true
	r.Rooms = make([]RoomStatus, len(models))
	for i, mod := range models {
		r.Rooms[i] = RoomStatus{Name: mod.Name, Status: mod.Status}
	}
}

type RoomResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Status = model.Status
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
