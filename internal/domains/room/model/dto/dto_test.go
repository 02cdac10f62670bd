package dto_test

import (
	"testing"

	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestGetRoomStatusesResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: "r-1", Name: "Room 1", Status: constant.StatusAvailable},
		{ID: "r-2", Name: "Room 2", Status: constant.StatusBooked},
	}

	var response dto.GetRoomStatusesResponse
	response.FromModels(rooms)

	assert.True(t, response.Success)
	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, "Room 1", response.Rooms[0].Name)
	assert.Equal(t, constant.StatusBooked, response.Rooms[1].Status)
}

func TestGetRoomStatusesResponse_FromModelsEmpty(t *testing.T) {
	var response dto.GetRoomStatusesResponse
	response.FromModels(nil)

	assert.True(t, response.Success)
	assert.NotNil(t, response.Rooms)
	assert.Empty(t, response.Rooms)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: "r-1", Name: "Room 1", Status: constant.StatusAvailable},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms)

	assert.Len(t, response.Rooms, 1)
	assert.Equal(t, "r-1", response.Rooms[0].ID)
	assert.Equal(t, "Room 1", response.Rooms[0].Name)
}
