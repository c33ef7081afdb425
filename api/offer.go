package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microcollab/microcollab-api/schema"
	"github.com/microcollab/microcollab-api/store"
)

func (s *Server) listOffers(c *gin.Context) {
	offers, err := s.store.ListOffers(c.Param("requestID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

func (s *Server) createOffer(c *gin.Context) {
	var params schema.OfferParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	offer, err := s.store.CreateOffer(c.GetString("userID"), params)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"offer": offer})
}

// acceptOffer triggers the whole acceptance flow: sibling offers are
// declined, the request moves to in_progress and a session is created.
func (s *Server) acceptOffer(c *gin.Context) {
	session, err := s.store.AcceptOffer(c.Param("offerID"))
	if err != nil {
		switch err {
		case store.ErrOfferNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotFound, err)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (s *Server) declineOffer(c *gin.Context) {
	offer, err := s.store.DeclineOffer(c.Param("offerID"))
	if err != nil {
		if err == store.ErrOfferNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"offer": offer})
}
