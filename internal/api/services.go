package api

// Service accessors group operations by resource family. Each service embeds
// *Client; typed methods are thin wrappers over Invoke and the catalog.

type StatusesService struct{ *Client }

type UsersService struct{ *Client }

type DirectMessagesService struct{ *Client }

type FriendshipsService struct{ *Client }

type FavoritesService struct{ *Client }

type NotificationsService struct{ *Client }

type BlocksService struct{ *Client }

type AccountService struct{ *Client }

func (c *Client) Statuses() StatusesService {
	return StatusesService{c}
}

func (c *Client) Users() UsersService {
	return UsersService{c}
}

func (c *Client) DirectMessages() DirectMessagesService {
	return DirectMessagesService{c}
}

func (c *Client) Friendships() FriendshipsService {
	return FriendshipsService{c}
}

func (c *Client) Favorites() FavoritesService {
	return FavoritesService{c}
}

func (c *Client) Notifications() NotificationsService {
	return NotificationsService{c}
}

func (c *Client) Blocks() BlocksService {
	return BlocksService{c}
}

func (c *Client) Account() AccountService {
	return AccountService{c}
}
